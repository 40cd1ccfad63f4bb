package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, expiresAt, err := GenerateJWT("user-1", "admin", "secret-secret-secret", time.Hour, "gg-test")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseAndValidateJWT(token, "secret-secret-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "gg-test", claims.Issuer)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, _, err := GenerateJWT("user-1", "member", "secret-a", time.Hour, "gg-test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret-b")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseJWT_Expired(t *testing.T) {
	token, _, err := GenerateJWT("user-1", "member", "secret-a", -time.Minute, "gg-test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret-a")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
