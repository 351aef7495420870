package usecase

import (
	"context"

	"fishers/internal/domain/entity"
)

// ReportUsecase defines the period reporting operations.
type ReportUsecase interface {
	ComputePeriodReport(ctx context.Context, filter entity.PeriodFilter) (*entity.PeriodReport, error)
}
