package usecase

import (
	"context"
	"time"

	"coffeeshop/internal/domain/entity"
)

// LoginOutput returns the access token issued after a successful login.
type LoginOutput struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	Roles       entity.Roles `json:"roles"`
}

// AuthUsecase guards management operations behind the shared manager secret.
type AuthUsecase interface {
	// ManagerLogin exchanges the manager secret for a short-lived access token.
	ManagerLogin(ctx context.Context, secret string) (*LoginOutput, error)
}
