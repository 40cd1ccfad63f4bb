package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
	"github.com/SscSPs/gigster_garage_backend/internal/platform/config"
	"github.com/SscSPs/gigster_garage_backend/internal/utils"
)

// tokenService implements the TokenSvcFacade for issuing JWT access tokens.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	return utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}

// authService exchanges credentials for an access token.
type authService struct {
	BaseService
	users  portssvc.UserAuthSvc
	tokens portssvc.TokenSvcFacade
}

// NewAuthService creates the login service.
func NewAuthService(users portssvc.UserAuthSvc, tokens portssvc.TokenSvcFacade) portssvc.AuthSvc {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.AuthenticateUser(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}, nil
}

var (
	_ portssvc.TokenSvcFacade = (*tokenService)(nil)
	_ portssvc.AuthSvc        = (*authService)(nil)
)
