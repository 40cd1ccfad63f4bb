package dto

import (
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
)

// CreateProposalRequest defines the data needed to draft a proposal.
type CreateProposalRequest struct {
	Title         string `json:"title" binding:"required,max=200"`
	ClientName    string `json:"clientName" binding:"required,max=200"`
	ClientEmail   string `json:"clientEmail" binding:"omitempty,email"`
	Content       string `json:"content" binding:"required"`
	ExpiresInDays *int   `json:"expiresInDays" binding:"omitempty,min=1,max=365"`
}

// RespondToProposalRequest is the client's answer on the public link.
// Response is checked by the workflow, not the binder, so that expiry is reported first.
type RespondToProposalRequest struct {
	Response string `json:"response"`
	Message  string `json:"message" binding:"max=5000"`
}

// CreateRevisionRequest starts a new version of a proposal.
type CreateRevisionRequest struct {
	RevisionNotes string `json:"revisionNotes" binding:"max=5000"`
}

// ProposalResponse is the authenticated API view of a proposal.
type ProposalResponse struct {
	ProposalID       string                  `json:"proposalID"`
	Title            string                  `json:"title"`
	ClientName       string                  `json:"clientName"`
	ClientEmail      string                  `json:"clientEmail,omitempty"`
	Content          string                  `json:"content"`
	Status           string                  `json:"status"`
	ShareableLink    string                  `json:"shareableLink,omitempty"`
	ExpiresInDays    int                     `json:"expiresInDays"`
	ExpiresAt        *time.Time              `json:"expiresAt,omitempty"`
	SentAt           *time.Time              `json:"sentAt,omitempty"`
	ViewedAt         *time.Time              `json:"viewedAt,omitempty"`
	RespondedAt      *time.Time              `json:"respondedAt,omitempty"`
	AcceptedAt       *time.Time              `json:"acceptedAt,omitempty"`
	ResponseMessage  string                  `json:"responseMessage,omitempty"`
	Version          int                     `json:"version"`
	ParentProposalID *string                 `json:"parentProposalId,omitempty"`
	Metadata         domain.ProposalMetadata `json:"metadata"`
	CreatedAt        time.Time               `json:"createdAt"`
	CreatedBy        string                  `json:"createdBy"`
}

// SharedProposalResponse is what an unauthenticated client sees through the link.
type SharedProposalResponse struct {
	Title           string     `json:"title"`
	ClientName      string     `json:"clientName"`
	Content         string     `json:"content"`
	Status          string     `json:"status"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	RespondedAt     *time.Time `json:"respondedAt,omitempty"`
	AcceptedAt      *time.Time `json:"acceptedAt,omitempty"`
	ResponseMessage string     `json:"responseMessage,omitempty"`
	Version         int        `json:"version"`
}

// RespondToProposalResponse is returned after a client response is recorded.
type RespondToProposalResponse struct {
	Message       string                 `json:"message"`
	Proposal      SharedProposalResponse `json:"proposal"`
	OwnerNotified bool                   `json:"ownerNotified"`
}

// CreateRevisionResponse returns the new version and where it came from.
type CreateRevisionResponse struct {
	Message            string           `json:"message"`
	Revision           ProposalResponse `json:"revision"`
	OriginalProposalID string           `json:"originalProposalId"`
}

// ListProposalsResponse wraps a page of proposals.
type ListProposalsResponse struct {
	Proposals []ProposalResponse `json:"proposals"`
}

// ToProposalResponse converts a domain.Proposal to a ProposalResponse DTO
func ToProposalResponse(p *domain.Proposal) ProposalResponse {
	return ProposalResponse{
		ProposalID:       p.ProposalID,
		Title:            p.Title,
		ClientName:       p.ClientName,
		ClientEmail:      p.ClientEmail,
		Content:          p.Content,
		Status:           string(p.Status),
		ShareableLink:    p.ShareableLink,
		ExpiresInDays:    p.ExpiresInDays,
		ExpiresAt:        p.ExpiresAt,
		SentAt:           p.SentAt,
		ViewedAt:         p.ViewedAt,
		RespondedAt:      p.RespondedAt,
		AcceptedAt:       p.AcceptedAt,
		ResponseMessage:  p.ResponseMessage,
		Version:          p.Version,
		ParentProposalID: p.ParentProposalID,
		Metadata:         p.Metadata,
		CreatedAt:        p.CreatedAt,
		CreatedBy:        p.CreatedBy,
	}
}

// ToSharedProposalResponse strips internal fields for the public link.
func ToSharedProposalResponse(p *domain.Proposal) SharedProposalResponse {
	return SharedProposalResponse{
		Title:           p.Title,
		ClientName:      p.ClientName,
		Content:         p.Content,
		Status:          string(p.Status),
		ExpiresAt:       p.ExpiresAt,
		RespondedAt:     p.RespondedAt,
		AcceptedAt:      p.AcceptedAt,
		ResponseMessage: p.ResponseMessage,
		Version:         p.Version,
	}
}

// ToListProposalsResponse converts a slice of proposals.
func ToListProposalsResponse(proposals []domain.Proposal) ListProposalsResponse {
	out := make([]ProposalResponse, len(proposals))
	for i := range proposals {
		out[i] = ToProposalResponse(&proposals[i])
	}
	return ListProposalsResponse{Proposals: out}
}
