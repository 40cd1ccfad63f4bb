package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrExpiredIsPrecondition(t *testing.T) {
	wrapped := fmt.Errorf("proposal abc: %w", ErrExpired)

	assert.True(t, errors.Is(wrapped, ErrExpired))
	assert.True(t, errors.Is(wrapped, ErrPrecondition))
	assert.False(t, errors.Is(wrapped, ErrValidation))
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewAppError(500, "failed to begin transaction", cause)

	assert.Equal(t, "failed to begin transaction: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewAppError(400, "bad input", nil)
	assert.Equal(t, "bad input", bare.Error())
}
