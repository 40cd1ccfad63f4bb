package services

import (
	"context"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
)

// TimeLogSvcFacade defines time tracking operations
type TimeLogSvcFacade interface {
	// StartTimer begins a new active log. It fails with apperrors.ErrConflict if one is already running.
	StartTimer(ctx context.Context, req dto.StartTimerRequest, userID string) (*domain.TimeLog, error)

	StopTimer(ctx context.Context, timeLogID string, userID string) (*domain.TimeLog, error)

	GetActiveTimer(ctx context.Context, userID string) (*domain.TimeLog, error)

	ListTimeLogs(ctx context.Context, userID string, params dto.PageParams) ([]domain.TimeLog, error)

	// ReviewTimeLog approves or rejects a stopped log.
	ReviewTimeLog(ctx context.Context, timeLogID string, decision domain.ApprovalStatus, reviewerID string) (*domain.TimeLog, error)
}
