package services

import (
	"context"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a JWT carrying the user's ID and role.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// AuthSvc exchanges credentials for an access token.
type AuthSvc interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
