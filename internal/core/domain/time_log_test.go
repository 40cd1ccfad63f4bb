package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTimeLog_Stop(t *testing.T) {
	start := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	log := domain.TimeLog{StartTime: start, IsActive: true}

	log.Stop(start.Add(90*time.Minute + 30*time.Second))

	assert.False(t, log.IsActive)
	assert.Equal(t, int64(5430), log.DurationSeconds)
	assert.Equal(t, start.Add(90*time.Minute+30*time.Second), *log.EndTime)
}

func TestTimeLog_StopBeforeStartClampsToZero(t *testing.T) {
	start := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	log := domain.TimeLog{StartTime: start, IsActive: true}

	log.Stop(start.Add(-time.Minute))

	assert.Zero(t, log.DurationSeconds)
	assert.Equal(t, start, *log.EndTime)
}
