package services

import (
	"context"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
)

// ProposalReaderSvc defines read operations for proposals
type ProposalReaderSvc interface {
	GetProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error)

	ListProposals(ctx context.Context, params dto.PageParams) ([]domain.Proposal, error)

	GetApprovalStats(ctx context.Context) (*domain.ProposalApprovalStats, error)
}

// ProposalWriterSvc defines write operations for proposals
type ProposalWriterSvc interface {
	CreateProposal(ctx context.Context, req dto.CreateProposalRequest, creatorUserID string) (*domain.Proposal, error)

	// SendProposal moves a draft to sent, issues its shareable link and starts the expiry clock.
	SendProposal(ctx context.Context, proposalID string, userID string) (*domain.Proposal, error)
}

// ProposalWorkflowSvc handles the client side of the shared link and revisions.
type ProposalWorkflowSvc interface {
	// ViewSharedProposal resolves a link and marks a sent proposal as viewed.
	ViewSharedProposal(ctx context.Context, link string) (*domain.Proposal, error)

	// RespondToProposal records the client's answer. Expired proposals are refused
	// with apperrors.ErrExpired before the response value is examined.
	// The owner notification outcome is reported but never fails the call.
	RespondToProposal(ctx context.Context, link string, response string, message string) (*domain.ProposalResponseOutcome, error)

	// CreateRevision copies a proposal forward as a new draft version.
	CreateRevision(ctx context.Context, proposalID string, revisionNotes string, userID string) (*domain.Proposal, error)
}

// ProposalSvcFacade combines all proposal-related service interfaces
type ProposalSvcFacade interface {
	ProposalReaderSvc
	ProposalWriterSvc
	ProposalWorkflowSvc
}
