package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/apperrors"
	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gigster_garage_backend/internal/core/ports/repositories"
	"github.com/SscSPs/gigster_garage_backend/internal/models"
	"github.com/SscSPs/gigster_garage_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const proposalColumns = `proposal_id, title, client_name, client_email, content, status, shareable_link,
	expires_in_days, expires_at, sent_at, viewed_at, responded_at, accepted_at, response_message,
	version, parent_proposal_id, metadata,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxProposalRepository struct {
	BaseRepository
}

func newPgxProposalRepository(pool *pgxpool.Pool) portsrepo.ProposalRepositoryFacade {
	return &PgxProposalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProposalRepositoryFacade = (*PgxProposalRepository)(nil)

func (r *PgxProposalRepository) SaveProposal(ctx context.Context, proposal domain.Proposal) error {
	m := mapping.ToModelProposal(proposal)
	query := `
		INSERT INTO proposals (` + proposalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProposalID,
		m.Title,
		m.ClientName,
		m.ClientEmail,
		m.Content,
		m.Status,
		m.ShareableLink,
		m.ExpiresInDays,
		m.ExpiresAt,
		m.SentAt,
		m.ViewedAt,
		m.RespondedAt,
		m.AcceptedAt,
		m.ResponseMessage,
		m.Version,
		m.ParentProposalID,
		m.Metadata,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return fmt.Errorf("%w: proposal %s already exists", apperrors.ErrDuplicate, m.ProposalID)
		}
		return fmt.Errorf("failed to save proposal %s: %w", m.ProposalID, err)
	}
	return nil
}

// UpdateProposal writes proposal only while the stored row is still in expectedStatus.
func (r *PgxProposalRepository) UpdateProposal(ctx context.Context, proposal domain.Proposal, expectedStatus domain.ProposalStatus) error {
	m := mapping.ToModelProposal(proposal)
	query := `
		UPDATE proposals SET
			title = $2, client_name = $3, client_email = $4, content = $5, status = $6,
			shareable_link = $7, expires_in_days = $8, expires_at = $9, sent_at = $10,
			viewed_at = $11, responded_at = $12, accepted_at = $13, response_message = $14,
			metadata = $15, last_updated_at = $16, last_updated_by = $17
		WHERE proposal_id = $1 AND status = $18;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ProposalID,
		m.Title,
		m.ClientName,
		m.ClientEmail,
		m.Content,
		m.Status,
		m.ShareableLink,
		m.ExpiresInDays,
		m.ExpiresAt,
		m.SentAt,
		m.ViewedAt,
		m.RespondedAt,
		m.AcceptedAt,
		m.ResponseMessage,
		m.Metadata,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		string(expectedStatus),
	)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return fmt.Errorf("%w: shareable link collision", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to update proposal %s: %w", m.ProposalID, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM proposals WHERE proposal_id = $1);`, m.ProposalID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check proposal %s: %w", m.ProposalID, err)
	}
	if !exists {
		return fmt.Errorf("proposal %s: %w", m.ProposalID, apperrors.ErrNotFound)
	}
	return fmt.Errorf("%w: proposal %s is no longer %s", apperrors.ErrConflict, m.ProposalID, expectedStatus)
}

const recordProposalResponseQuery = `
	UPDATE proposals SET
		status = $2, responded_at = $3, accepted_at = $4, response_message = $5, last_updated_at = $6
	WHERE proposal_id = $1
		AND status IN ('sent', 'viewed')
		AND (expires_at IS NULL OR expires_at >= $7);
`

// RecordProposalResponse stores a client response only while the proposal is
// still awaiting one and unexpired at now. It reports whether the row changed.
func (r *PgxProposalRepository) RecordProposalResponse(ctx context.Context, proposal domain.Proposal, now time.Time) (bool, error) {
	m := mapping.ToModelProposal(proposal)
	tag, err := r.Pool.Exec(ctx, recordProposalResponseQuery,
		m.ProposalID,
		m.Status,
		m.RespondedAt,
		m.AcceptedAt,
		m.ResponseMessage,
		m.LastUpdatedAt,
		now,
	)
	if err != nil {
		return false, fmt.Errorf("failed to record response for proposal %s: %w", m.ProposalID, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PgxProposalRepository) FindProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	return r.findOne(ctx, `SELECT `+proposalColumns+` FROM proposals WHERE proposal_id = $1;`, proposalID)
}

func (r *PgxProposalRepository) FindProposalByShareableLink(ctx context.Context, link string) (*domain.Proposal, error) {
	return r.findOne(ctx, `SELECT `+proposalColumns+` FROM proposals WHERE shareable_link = $1;`, link)
}

func (r *PgxProposalRepository) ListProposals(ctx context.Context, limit, offset int) ([]domain.Proposal, error) {
	limit, offset = normalizeLimit(limit, offset)
	query := `SELECT ` + proposalColumns + ` FROM proposals ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	return r.collect(ctx, query, limit, offset)
}

func (r *PgxProposalRepository) ListAllProposals(ctx context.Context) ([]domain.Proposal, error) {
	return r.collect(ctx, `SELECT `+proposalColumns+` FROM proposals;`)
}

func (r *PgxProposalRepository) findOne(ctx context.Context, query string, arg any) (*domain.Proposal, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query proposal: %w", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Proposal])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan proposal: %w", err)
	}
	proposal := mapping.ToDomainProposal(m)
	return &proposal, nil
}

func (r *PgxProposalRepository) collect(ctx context.Context, query string, args ...any) ([]domain.Proposal, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query proposals: %w", err)
	}
	modelProposals, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Proposal])
	if err != nil {
		return nil, fmt.Errorf("failed to scan proposals: %w", err)
	}
	return mapping.ToDomainProposalSlice(modelProposals), nil
}
