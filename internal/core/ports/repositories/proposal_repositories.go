package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
)

// ProposalReader defines read operations for proposal data
type ProposalReader interface {
	FindProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error)

	// FindProposalByShareableLink resolves the public link token to its proposal.
	FindProposalByShareableLink(ctx context.Context, link string) (*domain.Proposal, error)

	// ListProposals returns proposals ordered newest first.
	ListProposals(ctx context.Context, limit, offset int) ([]domain.Proposal, error)

	// ListAllProposals returns every proposal, for aggregate statistics.
	ListAllProposals(ctx context.Context) ([]domain.Proposal, error)
}

// ProposalWriter defines write operations for proposal data
type ProposalWriter interface {
	SaveProposal(ctx context.Context, proposal domain.Proposal) error

	// UpdateProposal overwrites the proposal only while it is still in
	// expectedStatus; otherwise apperrors.ErrConflict.
	UpdateProposal(ctx context.Context, proposal domain.Proposal, expectedStatus domain.ProposalStatus) error

	// RecordProposalResponse is a compare-and-set: it applies the response only if
	// the proposal is still sent or viewed and not expired at now.
	RecordProposalResponse(ctx context.Context, proposal domain.Proposal, now time.Time) (bool, error)
}

// ProposalRepositoryFacade combines all proposal-related repository interfaces
type ProposalRepositoryFacade interface {
	ProposalReader
	ProposalWriter
}
