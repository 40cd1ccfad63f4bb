package repositories

import (
	"context"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
)

// TimeLogReader defines read operations for time log data
type TimeLogReader interface {
	FindTimeLogByID(ctx context.Context, timeLogID string) (*domain.TimeLog, error)

	// FindActiveTimeLog returns the user's running timer or apperrors.ErrNotFound.
	FindActiveTimeLog(ctx context.Context, userID string) (*domain.TimeLog, error)

	ListTimeLogsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.TimeLog, error)
}

// TimeLogWriter defines write operations for time log data
type TimeLogWriter interface {
	// SaveTimeLog inserts a log. A second active log for the same user yields apperrors.ErrConflict.
	SaveTimeLog(ctx context.Context, log domain.TimeLog) error

	UpdateTimeLog(ctx context.Context, log domain.TimeLog) error
}

// TimeLogRepositoryFacade combines all time log repository interfaces
type TimeLogRepositoryFacade interface {
	TimeLogReader
	TimeLogWriter
}
