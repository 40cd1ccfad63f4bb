package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/gigster_garage_backend/internal/apperrors"
	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/google/uuid"
)

func (s *proposalService) findByLink(ctx context.Context, link string) (*domain.Proposal, error) {
	if strings.TrimSpace(link) == "" {
		return nil, fmt.Errorf("%w: proposal not found", apperrors.ErrNotFound)
	}
	proposal, err := s.proposalRepo.FindProposalByShareableLink(ctx, link)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve shareable link")
		}
		return nil, fmt.Errorf("failed to resolve proposal link: %w", err)
	}
	return proposal, nil
}

func (s *proposalService) ViewSharedProposal(ctx context.Context, link string) (*domain.Proposal, error) {
	proposal, err := s.findByLink(ctx, link)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	if proposal.MarkViewed(now) {
		proposal.LastUpdatedAt = now
		err := s.proposalRepo.UpdateProposal(ctx, *proposal, domain.ProposalSent)
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			// answered between the read and the write; show the current state
			return s.findByLink(ctx, link)
		case err != nil:
			s.LogError(ctx, err, "Failed to mark proposal viewed", slog.String("proposal_id", proposal.ProposalID))
			return nil, fmt.Errorf("failed to record proposal view: %w", err)
		}
		s.LogInfo(ctx, "Proposal viewed", slog.String("proposal_id", proposal.ProposalID))
	}
	return proposal, nil
}

// RespondToProposal checks, in order: link exists, not expired, still awaiting
// a response, response value valid. Expired proposals are left untouched.
func (s *proposalService) RespondToProposal(ctx context.Context, link string, response string, message string) (*domain.ProposalResponseOutcome, error) {
	proposal, err := s.findByLink(ctx, link)
	if err != nil {
		return nil, err
	}
	logAttrs := []any{slog.String("proposal_id", proposal.ProposalID)}

	now := s.Now()
	if proposal.IsExpired(now) {
		s.LogInfo(ctx, "Response refused, proposal expired", logAttrs...)
		return nil, fmt.Errorf("%w: this proposal has expired", apperrors.ErrExpired)
	}
	if !proposal.AwaitingResponse() {
		return nil, fmt.Errorf("%w: proposal is %s and no longer accepts responses", apperrors.ErrPrecondition, proposal.Status)
	}

	answer := domain.ProposalResponse(response)
	if !answer.IsValid() {
		return nil, fmt.Errorf("%w: invalid response %q, must be one of accepted, rejected, revision_requested", apperrors.ErrValidation, response)
	}

	proposal.ApplyResponse(answer, message, now)
	proposal.LastUpdatedAt = now
	recorded, err := s.proposalRepo.RecordProposalResponse(ctx, *proposal, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to record proposal response", logAttrs...)
		return nil, fmt.Errorf("failed to record proposal response: %w", err)
	}
	if !recorded {
		s.LogInfo(ctx, "Response refused, proposal changed concurrently", logAttrs...)
		return nil, fmt.Errorf("%w: proposal has already been answered or has expired", apperrors.ErrPrecondition)
	}
	s.LogInfo(ctx, "Proposal response recorded", append(logAttrs, slog.String("response", response))...)

	if s.tracker != nil {
		s.tracker.Track(proposal.CreatedBy, EventProposalResponded, map[string]any{
			"proposal_id": proposal.ProposalID,
			"response":    response,
			"version":     proposal.Version,
		})
	}

	outcome := &domain.ProposalResponseOutcome{
		Proposal:          *proposal,
		OwnerNotification: s.notifyOwner(ctx, *proposal, answer),
	}
	return outcome, nil
}

// notifyOwner emails the proposal's creator. Its outcome never affects the response.
func (s *proposalService) notifyOwner(ctx context.Context, proposal domain.Proposal, answer domain.ProposalResponse) domain.DeliveryResult {
	if s.notifier == nil {
		return domain.NotDelivered(domain.DeliveryNoRecipient, nil)
	}

	ownerEmail := ""
	if s.userRepo != nil && proposal.CreatedBy != "" {
		owner, err := s.userRepo.FindUserByID(ctx, proposal.CreatedBy)
		switch {
		case err == nil && owner != nil:
			ownerEmail = owner.Email
		case err != nil && !errors.Is(err, apperrors.ErrNotFound):
			s.LogWarn(ctx, err, "Failed to look up proposal owner, using fallback address",
				slog.String("proposal_id", proposal.ProposalID))
		}
	}

	result := s.notifier.NotifyProposalResponse(ctx, proposal, answer, ownerEmail)
	if !result.Delivered {
		s.LogWarn(ctx, result.Err, "Owner not notified of proposal response",
			slog.String("proposal_id", proposal.ProposalID),
			slog.String("failure", string(result.Failure)))
	}
	return result
}

func (s *proposalService) CreateRevision(ctx context.Context, proposalID string, revisionNotes string, userID string) (*domain.Proposal, error) {
	parent, err := s.GetProposalByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	revision := parent.NewRevision(uuid.NewString(), revisionNotes, userID, s.Now())
	if err := s.proposalRepo.SaveProposal(ctx, revision); err != nil {
		s.LogError(ctx, err, "Failed to save proposal revision", slog.String("parent_id", proposalID))
		return nil, fmt.Errorf("failed to create revision: %w", err)
	}

	s.LogInfo(ctx, "Proposal revision created",
		slog.String("proposal_id", revision.ProposalID),
		slog.String("parent_id", proposalID),
		slog.Int("version", revision.Version))
	return &revision, nil
}
