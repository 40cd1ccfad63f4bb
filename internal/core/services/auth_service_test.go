package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/apperrors"
	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/SscSPs/gigster_garage_backend/internal/core/services"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
	"github.com/SscSPs/gigster_garage_backend/internal/platform/config"
	"github.com/SscSPs/gigster_garage_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "gigster-garage-test",
	}
}

func TestLogin_IssuesToken(t *testing.T) {
	ctx := context.Background()
	hash, err := utils.HashPassword("right-password")
	require.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("FindUserByEmail", ctx, "owner@gigster.test").
		Return(&domain.User{UserID: "user-1", Email: "owner@gigster.test", Role: domain.RoleAdmin, PasswordHash: hash}, nil).Once()

	cfg := testAuthConfig()
	auth := services.NewAuthService(services.NewUserService(repo), services.NewTokenService(cfg))

	resp, err := auth.Login(ctx, dto.LoginRequest{Email: "owner@gigster.test", Password: "right-password"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.User.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)

	claims, err := utils.ParseAndValidateJWT(resp.Token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "gigster-garage-test", claims.Issuer)
}

func TestLogin_BadCredentials(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	repo.On("FindUserByEmail", ctx, "ghost@gigster.test").Return(nil, apperrors.ErrNotFound).Once()

	auth := services.NewAuthService(services.NewUserService(repo), services.NewTokenService(testAuthConfig()))

	resp, err := auth.Login(ctx, dto.LoginRequest{Email: "ghost@gigster.test", Password: "whatever"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
