package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: activeTimerIndex})

	constraint, ok := uniqueViolation(wrapped)
	assert.True(t, ok)
	assert.Equal(t, activeTimerIndex, constraint)

	_, ok = uniqueViolation(&pgconn.PgError{Code: "23503"})
	assert.False(t, ok)

	_, ok = uniqueViolation(errors.New("connection reset"))
	assert.False(t, ok)
}

func TestNormalizeLimit(t *testing.T) {
	limit, offset := normalizeLimit(0, -5)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	limit, offset = normalizeLimit(50, 10)
	assert.Equal(t, 50, limit)
	assert.Equal(t, 10, offset)
}
