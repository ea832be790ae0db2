package services

import (
	"context"

	"github.com/askelio/askelio-backend/internal/dto"
)

// AuthSvcFacade defines registration and login operations.
type AuthSvcFacade interface {
	// Register creates a user, their personal credit account and the optional
	// signup bonus ledger entry, then returns a token response.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)

	// Login verifies credentials and issues a JWT.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
}
