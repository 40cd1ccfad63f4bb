package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/apperrors"
	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gigster_garage_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
	"github.com/google/uuid"
)

type timeLogService struct {
	BaseService
	timeLogRepo portsrepo.TimeLogRepositoryFacade
}

// TimeLogServiceOption is a functional option for configuring the time log service
type TimeLogServiceOption func(*timeLogService)

// WithTimeLogClock overrides the time source.
func WithTimeLogClock(clock func() time.Time) TimeLogServiceOption {
	return func(s *timeLogService) {
		s.Clock = clock
	}
}

// NewTimeLogService creates a new time log service with the provided options
func NewTimeLogService(repo portsrepo.TimeLogRepositoryFacade, options ...TimeLogServiceOption) portssvc.TimeLogSvcFacade {
	svc := &timeLogService{timeLogRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TimeLogSvcFacade = (*timeLogService)(nil)

func (s *timeLogService) StartTimer(ctx context.Context, req dto.StartTimerRequest, userID string) (*domain.TimeLog, error) {
	active, err := s.timeLogRepo.FindActiveTimeLog(ctx, userID)
	switch {
	case err == nil && active != nil:
		return nil, fmt.Errorf("%w: timer %s is already running", apperrors.ErrConflict, active.TimeLogID)
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check active timer", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to start timer: %w", err)
	}

	now := s.Now()
	timeLog := domain.TimeLog{
		TimeLogID:      uuid.NewString(),
		UserID:         userID,
		Description:    req.Description,
		StartTime:      now,
		IsActive:       true,
		ApprovalStatus: domain.ApprovalPending,
		InvoiceID:      req.InvoiceID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// The store enforces one active timer per user, covering concurrent starts.
	if err := s.timeLogRepo.SaveTimeLog(ctx, timeLog); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to save time log", slog.String("user_id", userID))
		}
		return nil, fmt.Errorf("failed to start timer: %w", err)
	}
	s.LogInfo(ctx, "Timer started", slog.String("time_log_id", timeLog.TimeLogID))
	return &timeLog, nil
}

func (s *timeLogService) StopTimer(ctx context.Context, timeLogID string, userID string) (*domain.TimeLog, error) {
	timeLog, err := s.findTimeLog(ctx, timeLogID)
	if err != nil {
		return nil, err
	}
	if timeLog.UserID != userID {
		return nil, fmt.Errorf("%w: time log belongs to another user", apperrors.ErrForbidden)
	}
	if !timeLog.IsActive {
		return nil, fmt.Errorf("%w: timer is not running", apperrors.ErrPrecondition)
	}

	now := s.Now()
	timeLog.Stop(now)
	timeLog.LastUpdatedAt = now
	timeLog.LastUpdatedBy = userID
	if err := s.timeLogRepo.UpdateTimeLog(ctx, *timeLog); err != nil {
		s.LogError(ctx, err, "Failed to stop timer", slog.String("time_log_id", timeLogID))
		return nil, fmt.Errorf("failed to stop timer: %w", err)
	}
	s.LogInfo(ctx, "Timer stopped",
		slog.String("time_log_id", timeLogID),
		slog.Int64("duration_seconds", timeLog.DurationSeconds))
	return timeLog, nil
}

func (s *timeLogService) GetActiveTimer(ctx context.Context, userID string) (*domain.TimeLog, error) {
	timeLog, err := s.timeLogRepo.FindActiveTimeLog(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active timer: %w", err)
	}
	return timeLog, nil
}

func (s *timeLogService) ListTimeLogs(ctx context.Context, userID string, params dto.PageParams) ([]domain.TimeLog, error) {
	logs, err := s.timeLogRepo.ListTimeLogsByUser(ctx, userID, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list time logs", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}
	return logs, nil
}

func (s *timeLogService) ReviewTimeLog(ctx context.Context, timeLogID string, decision domain.ApprovalStatus, reviewerID string) (*domain.TimeLog, error) {
	if decision != domain.ApprovalApproved && decision != domain.ApprovalRejected {
		return nil, fmt.Errorf("%w: decision must be approved or rejected", apperrors.ErrValidation)
	}

	timeLog, err := s.findTimeLog(ctx, timeLogID)
	if err != nil {
		return nil, err
	}
	if timeLog.IsActive {
		return nil, fmt.Errorf("%w: stop the timer before reviewing it", apperrors.ErrPrecondition)
	}

	timeLog.ApprovalStatus = decision
	timeLog.LastUpdatedAt = s.Now()
	timeLog.LastUpdatedBy = reviewerID
	if err := s.timeLogRepo.UpdateTimeLog(ctx, *timeLog); err != nil {
		s.LogError(ctx, err, "Failed to review time log", slog.String("time_log_id", timeLogID))
		return nil, fmt.Errorf("failed to review time log: %w", err)
	}
	return timeLog, nil
}

func (s *timeLogService) findTimeLog(ctx context.Context, timeLogID string) (*domain.TimeLog, error) {
	timeLog, err := s.timeLogRepo.FindTimeLogByID(ctx, timeLogID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get time log", slog.String("time_log_id", timeLogID))
		}
		return nil, fmt.Errorf("failed to get time log %s: %w", timeLogID, err)
	}
	return timeLog, nil
}
