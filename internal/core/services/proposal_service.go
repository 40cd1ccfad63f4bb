package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/apperrors"
	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gigster_garage_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
	"github.com/SscSPs/gigster_garage_backend/internal/utils"
	"github.com/google/uuid"
)

const (
	DefaultProposalExpiryDays = 30
	EventProposalResponded    = "proposal_responded"
	shareableLinkTokenBytes   = 24
)

// proposalService implements the ProposalSvcFacade interface
type proposalService struct {
	BaseService
	proposalRepo      portsrepo.ProposalRepositoryFacade
	userRepo          portsrepo.UserReader
	notifier          portssvc.ProposalNotifier
	tracker           portssvc.EventTracker
	defaultExpiryDays int
}

// ProposalServiceOption is a functional option for configuring the proposal service
type ProposalServiceOption func(*proposalService)

// WithProposalNotifier enables owner emails when a client responds.
func WithProposalNotifier(notifier portssvc.ProposalNotifier) ProposalServiceOption {
	return func(s *proposalService) {
		s.notifier = notifier
	}
}

// WithProposalOwnerLookup resolves the creating user's email for owner notices.
func WithProposalOwnerLookup(repo portsrepo.UserReader) ProposalServiceOption {
	return func(s *proposalService) {
		s.userRepo = repo
	}
}

// WithProposalEventTracker records an analytics event per client response.
func WithProposalEventTracker(tracker portssvc.EventTracker) ProposalServiceOption {
	return func(s *proposalService) {
		s.tracker = tracker
	}
}

// WithProposalDefaultExpiry sets the expiry window applied when a request omits one.
func WithProposalDefaultExpiry(days int) ProposalServiceOption {
	return func(s *proposalService) {
		if days > 0 {
			s.defaultExpiryDays = days
		}
	}
}

// WithProposalClock overrides the time source.
func WithProposalClock(clock func() time.Time) ProposalServiceOption {
	return func(s *proposalService) {
		s.Clock = clock
	}
}

// NewProposalService creates a new proposal service with the provided options
func NewProposalService(repo portsrepo.ProposalRepositoryFacade, options ...ProposalServiceOption) portssvc.ProposalSvcFacade {
	svc := &proposalService{
		proposalRepo:      repo,
		defaultExpiryDays: DefaultProposalExpiryDays,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ProposalSvcFacade = (*proposalService)(nil)

func (s *proposalService) CreateProposal(ctx context.Context, req dto.CreateProposalRequest, creatorUserID string) (*domain.Proposal, error) {
	expiresInDays := s.defaultExpiryDays
	if req.ExpiresInDays != nil {
		expiresInDays = *req.ExpiresInDays
	}

	now := s.Now()
	proposal := domain.Proposal{
		ProposalID:    uuid.NewString(),
		Title:         req.Title,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		Content:       req.Content,
		Status:        domain.ProposalDraft,
		ExpiresInDays: expiresInDays,
		Version:       1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.proposalRepo.SaveProposal(ctx, proposal); err != nil {
		s.LogError(ctx, err, "Failed to save proposal")
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}
	s.LogInfo(ctx, "Proposal created", slog.String("proposal_id", proposal.ProposalID))
	return &proposal, nil
}

func (s *proposalService) GetProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	proposal, err := s.proposalRepo.FindProposalByID(ctx, proposalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get proposal", slog.String("proposal_id", proposalID))
		}
		return nil, fmt.Errorf("failed to get proposal %s: %w", proposalID, err)
	}
	return proposal, nil
}

func (s *proposalService) ListProposals(ctx context.Context, params dto.PageParams) ([]domain.Proposal, error) {
	proposals, err := s.proposalRepo.ListProposals(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list proposals")
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return proposals, nil
}

func (s *proposalService) SendProposal(ctx context.Context, proposalID string, userID string) (*domain.Proposal, error) {
	proposal, err := s.GetProposalByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal.Status != domain.ProposalDraft {
		return nil, fmt.Errorf("%w: only draft proposals can be sent (status %s)", apperrors.ErrPrecondition, proposal.Status)
	}

	link, err := utils.GenerateURLToken(shareableLinkTokenBytes)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate shareable link", slog.String("proposal_id", proposalID))
		return nil, fmt.Errorf("failed to generate shareable link: %w", err)
	}

	now := s.Now()
	days := proposal.ExpiresInDays
	if days <= 0 {
		days = s.defaultExpiryDays
	}
	expiresAt := now.AddDate(0, 0, days)

	prevStatus := proposal.Status
	proposal.Status = domain.ProposalSent
	proposal.ShareableLink = link
	proposal.SentAt = &now
	proposal.ExpiresAt = &expiresAt
	proposal.LastUpdatedAt = now
	proposal.LastUpdatedBy = userID

	if err := s.proposalRepo.UpdateProposal(ctx, *proposal, prevStatus); err != nil {
		s.LogError(ctx, err, "Failed to update proposal on send", slog.String("proposal_id", proposalID))
		return nil, fmt.Errorf("failed to send proposal: %w", err)
	}
	s.LogInfo(ctx, "Proposal sent", slog.String("proposal_id", proposalID), slog.Time("expires_at", expiresAt))
	return proposal, nil
}

func (s *proposalService) GetApprovalStats(ctx context.Context) (*domain.ProposalApprovalStats, error) {
	proposals, err := s.proposalRepo.ListAllProposals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load proposals for stats")
		return nil, fmt.Errorf("failed to compute proposal stats: %w", err)
	}

	now := s.Now()
	stats := &domain.ProposalApprovalStats{Total: len(proposals)}
	for i := range proposals {
		p := &proposals[i]
		switch {
		case p.Status == domain.ProposalAccepted:
			stats.Accepted++
		case p.Status == domain.ProposalRejected:
			stats.Rejected++
		case p.Status == domain.ProposalRevisionRequested:
			stats.RevisionRequested++
		case p.Status == domain.ProposalExpired:
			stats.Expired++
		case p.AwaitingResponse() && p.IsExpired(now):
			stats.Expired++
		case p.AwaitingResponse():
			stats.AwaitingResponse++
		}
	}

	responded := stats.Accepted + stats.Rejected + stats.RevisionRequested
	if responded > 0 {
		stats.AcceptanceRate = int(math.Round(float64(stats.Accepted) / float64(responded) * 100))
	}
	return stats, nil
}
