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

const contractColumns = `contract_id, contract_number, title, client_name, client_email, content, status,
	contract_value, currency, effective_date, expiration_date, auto_renewal, renewal_period_days,
	notice_period_days, requires_signature, business_signed_at, business_signer_name,
	client_signed_at, client_signer_name, sent_at, last_reminder_sent, reminder_count,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxContractRepository struct {
	BaseRepository
}

func newPgxContractRepository(pool *pgxpool.Pool) portsrepo.ContractRepositoryFacade {
	return &PgxContractRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContractRepositoryFacade = (*PgxContractRepository)(nil)

func (r *PgxContractRepository) SaveContract(ctx context.Context, contract domain.Contract) error {
	m := mapping.ToModelContract(contract)
	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ContractID,
		m.ContractNumber,
		m.Title,
		m.ClientName,
		m.ClientEmail,
		m.Content,
		m.Status,
		m.ContractValue,
		m.Currency,
		m.EffectiveDate,
		m.ExpirationDate,
		m.AutoRenewal,
		m.RenewalPeriodDays,
		m.NoticePeriodDays,
		m.RequiresSignature,
		m.BusinessSignedAt,
		m.BusinessSignerName,
		m.ClientSignedAt,
		m.ClientSignerName,
		m.SentAt,
		m.LastReminderSent,
		m.ReminderCount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return fmt.Errorf("%w: contract number %s already exists", apperrors.ErrDuplicate, m.ContractNumber)
		}
		return fmt.Errorf("failed to save contract %s: %w", m.ContractID, err)
	}
	return nil
}

func (r *PgxContractRepository) UpdateContract(ctx context.Context, contract domain.Contract) error {
	m := mapping.ToModelContract(contract)
	query := `
		UPDATE contracts SET
			title = $2, client_name = $3, client_email = $4, content = $5, status = $6,
			contract_value = $7, currency = $8, effective_date = $9, expiration_date = $10,
			auto_renewal = $11, renewal_period_days = $12, notice_period_days = $13,
			requires_signature = $14, business_signed_at = $15, business_signer_name = $16,
			client_signed_at = $17, client_signer_name = $18, sent_at = $19,
			last_reminder_sent = $20, reminder_count = $21,
			last_updated_at = $22, last_updated_by = $23
		WHERE contract_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ContractID,
		m.Title,
		m.ClientName,
		m.ClientEmail,
		m.Content,
		m.Status,
		m.ContractValue,
		m.Currency,
		m.EffectiveDate,
		m.ExpirationDate,
		m.AutoRenewal,
		m.RenewalPeriodDays,
		m.NoticePeriodDays,
		m.RequiresSignature,
		m.BusinessSignedAt,
		m.BusinessSignerName,
		m.ClientSignedAt,
		m.ClientSignerName,
		m.SentAt,
		m.LastReminderSent,
		m.ReminderCount,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update contract %s: %w", m.ContractID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("contract %s: %w", m.ContractID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxContractRepository) FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+contractColumns+` FROM contracts WHERE contract_id = $1;`, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contract %s: %w", contractID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Contract])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan contract %s: %w", contractID, err)
	}
	contract := mapping.ToDomainContract(m)
	return &contract, nil
}

func (r *PgxContractRepository) ListContracts(ctx context.Context, limit, offset int) ([]domain.Contract, error) {
	limit, offset = normalizeLimit(limit, offset)
	query := `SELECT ` + contractColumns + ` FROM contracts ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	return r.collect(ctx, query, limit, offset)
}

func (r *PgxContractRepository) ListContractsByStatus(ctx context.Context, statuses ...domain.ContractStatus) ([]domain.Contract, error) {
	if len(statuses) == 0 {
		return r.collect(ctx, `SELECT `+contractColumns+` FROM contracts;`)
	}
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE status = ANY($1) ORDER BY expiration_date ASC NULLS LAST;`
	return r.collect(ctx, query, values)
}

func (r *PgxContractRepository) collect(ctx context.Context, query string, args ...any) ([]domain.Contract, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contracts: %w", err)
	}
	modelContracts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Contract])
	if err != nil {
		return nil, fmt.Errorf("failed to scan contracts: %w", err)
	}
	return mapping.ToDomainContractSlice(modelContracts), nil
}
