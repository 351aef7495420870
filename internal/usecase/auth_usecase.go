package usecase

import (
	"context"

	"fishers/internal/domain/entity"
)

// AuthUsecase defines the operator authentication operations.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginResult, error)
	// EnsureBootstrapAdmin creates the configured administrator when it does not exist yet.
	EnsureBootstrapAdmin(ctx context.Context) error
}

// LoginInput defines the operator credentials.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult holds the issued access token.
type LoginResult struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	ExpiresIn   int64            `json:"expires_in"` // seconds
	Operator    *entity.Operator `json:"operator"`
}
