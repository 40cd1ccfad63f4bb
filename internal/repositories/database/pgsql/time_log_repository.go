package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/gigster_garage_backend/internal/apperrors"
	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gigster_garage_backend/internal/core/ports/repositories"
	"github.com/SscSPs/gigster_garage_backend/internal/models"
	"github.com/SscSPs/gigster_garage_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const timeLogColumns = `time_log_id, user_id, description, start_time, end_time, duration_seconds,
	is_active, approval_status, invoice_id, created_at, created_by, last_updated_at, last_updated_by`

// activeTimerIndex is the partial unique index allowing one running timer per user.
const activeTimerIndex = "time_logs_one_active_per_user"

type PgxTimeLogRepository struct {
	BaseRepository
}

func newPgxTimeLogRepository(pool *pgxpool.Pool) portsrepo.TimeLogRepositoryFacade {
	return &PgxTimeLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TimeLogRepositoryFacade = (*PgxTimeLogRepository)(nil)

func (r *PgxTimeLogRepository) SaveTimeLog(ctx context.Context, log domain.TimeLog) error {
	m := mapping.ToModelTimeLog(log)
	query := `
		INSERT INTO time_logs (` + timeLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TimeLogID,
		m.UserID,
		m.Description,
		m.StartTime,
		m.EndTime,
		m.DurationSeconds,
		m.IsActive,
		m.ApprovalStatus,
		m.InvoiceID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if constraint == activeTimerIndex {
				return fmt.Errorf("%w: user %s already has a running timer", apperrors.ErrConflict, m.UserID)
			}
			return fmt.Errorf("%w: time log %s already exists", apperrors.ErrDuplicate, m.TimeLogID)
		}
		return fmt.Errorf("failed to save time log %s: %w", m.TimeLogID, err)
	}
	return nil
}

func (r *PgxTimeLogRepository) UpdateTimeLog(ctx context.Context, log domain.TimeLog) error {
	m := mapping.ToModelTimeLog(log)
	query := `
		UPDATE time_logs SET
			description = $2, end_time = $3, duration_seconds = $4, is_active = $5,
			approval_status = $6, invoice_id = $7, last_updated_at = $8, last_updated_by = $9
		WHERE time_log_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TimeLogID,
		m.Description,
		m.EndTime,
		m.DurationSeconds,
		m.IsActive,
		m.ApprovalStatus,
		m.InvoiceID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update time log %s: %w", m.TimeLogID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("time log %s: %w", m.TimeLogID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTimeLogRepository) FindTimeLogByID(ctx context.Context, timeLogID string) (*domain.TimeLog, error) {
	return r.findOne(ctx, `SELECT `+timeLogColumns+` FROM time_logs WHERE time_log_id = $1;`, timeLogID)
}

func (r *PgxTimeLogRepository) FindActiveTimeLog(ctx context.Context, userID string) (*domain.TimeLog, error) {
	return r.findOne(ctx, `SELECT `+timeLogColumns+` FROM time_logs WHERE user_id = $1 AND is_active;`, userID)
}

func (r *PgxTimeLogRepository) ListTimeLogsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.TimeLog, error) {
	limit, offset = normalizeLimit(limit, offset)
	query := `SELECT ` + timeLogColumns + ` FROM time_logs WHERE user_id = $1 ORDER BY start_time DESC LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query time logs: %w", err)
	}
	modelLogs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TimeLog])
	if err != nil {
		return nil, fmt.Errorf("failed to scan time logs: %w", err)
	}
	return mapping.ToDomainTimeLogSlice(modelLogs), nil
}

func (r *PgxTimeLogRepository) findOne(ctx context.Context, query string, arg any) (*domain.TimeLog, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query time log: %w", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.TimeLog])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan time log: %w", err)
	}
	timeLog := mapping.ToDomainTimeLog(m)
	return &timeLog, nil
}
