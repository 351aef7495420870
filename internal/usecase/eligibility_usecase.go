package usecase

import (
	"context"

	"fishers/internal/domain/entity"

	"github.com/google/uuid"
)

// EligibilityUsecase defines the seasonal-closure benefit operations.
type EligibilityUsecase interface {
	// EvaluateSeasonalBenefit checks dues and documents for year. A zero year means the current one.
	EvaluateSeasonalBenefit(ctx context.Context, memberID uuid.UUID, year int) (*entity.BenefitEvaluation, error)
	// RenderDossier prints the evaluation together with the member documents and dues.
	RenderDossier(ctx context.Context, memberID uuid.UUID, year int) ([]byte, error)
}
