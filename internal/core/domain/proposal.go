package domain

import (
	"fmt"
	"time"
)

// ProposalStatus is the workflow state of a proposal.
type ProposalStatus string

const (
	ProposalDraft             ProposalStatus = "draft"
	ProposalSent              ProposalStatus = "sent"
	ProposalViewed            ProposalStatus = "viewed"
	ProposalAccepted          ProposalStatus = "accepted"
	ProposalRejected          ProposalStatus = "rejected"
	ProposalRevisionRequested ProposalStatus = "revision_requested"
	ProposalExpired           ProposalStatus = "expired"
)

// ProposalResponse is a client's answer to a shared proposal.
type ProposalResponse string

const (
	ResponseAccepted          ProposalResponse = "accepted"
	ResponseRejected          ProposalResponse = "rejected"
	ResponseRevisionRequested ProposalResponse = "revision_requested"
)

// IsValid reports whether r is one of the accepted client responses.
func (r ProposalResponse) IsValid() bool {
	switch r {
	case ResponseAccepted, ResponseRejected, ResponseRevisionRequested:
		return true
	}
	return false
}

// DisplayName is the human readable form used in notification subjects.
func (r ProposalResponse) DisplayName() string {
	switch r {
	case ResponseAccepted:
		return "ACCEPTED"
	case ResponseRejected:
		return "REJECTED"
	case ResponseRevisionRequested:
		return "REVISION REQUESTED"
	}
	return string(r)
}

// RevisionReasonClientRequested marks revisions raised from a client's response.
const RevisionReasonClientRequested = "client_requested"

// ProposalMetadata holds free-form revision bookkeeping.
type ProposalMetadata struct {
	RevisionNotes      string `json:"revisionNotes,omitempty"`
	RevisionReason     string `json:"revisionReason,omitempty"`
	OriginalProposalID string `json:"originalProposalId,omitempty"`
}

// Proposal is a priced offer shared with a client through an unguessable link.
type Proposal struct {
	ProposalID       string           `json:"proposalID"`
	Title            string           `json:"title"`
	ClientName       string           `json:"clientName"`
	ClientEmail      string           `json:"clientEmail"`
	Content          string           `json:"content"`
	Status           ProposalStatus   `json:"status"`
	ShareableLink    string           `json:"shareableLink,omitempty"`
	ExpiresInDays    int              `json:"expiresInDays"`
	ExpiresAt        *time.Time       `json:"expiresAt,omitempty"`
	SentAt           *time.Time       `json:"sentAt,omitempty"`
	ViewedAt         *time.Time       `json:"viewedAt,omitempty"`
	RespondedAt      *time.Time       `json:"respondedAt,omitempty"`
	AcceptedAt       *time.Time       `json:"acceptedAt,omitempty"`
	ResponseMessage  string           `json:"responseMessage,omitempty"`
	Version          int              `json:"version"`
	ParentProposalID *string          `json:"parentProposalId,omitempty"`
	Metadata         ProposalMetadata `json:"metadata"`
	AuditFields
}

// IsExpired reports whether the proposal's expiry instant lies before now.
func (p *Proposal) IsExpired(now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}

// AwaitingResponse reports whether the client may still respond.
func (p *Proposal) AwaitingResponse() bool {
	return p.Status == ProposalSent || p.Status == ProposalViewed
}

// ApplyResponse records a client response. Callers must check expiry and
// AwaitingResponse first; this only mutates state.
func (p *Proposal) ApplyResponse(response ProposalResponse, message string, now time.Time) {
	at := now
	p.Status = ProposalStatus(response)
	p.RespondedAt = &at
	p.ResponseMessage = message
	if response == ResponseAccepted {
		acceptedAt := now
		p.AcceptedAt = &acceptedAt
	}
}

// MarkViewed moves a sent proposal to viewed. It returns false when nothing changed.
func (p *Proposal) MarkViewed(now time.Time) bool {
	if p.Status != ProposalSent {
		return false
	}
	at := now
	p.Status = ProposalViewed
	p.ViewedAt = &at
	return true
}

// NewRevision copies p forward as a fresh draft one version higher, linked back to p.
// The new proposal has no shareable link or workflow timestamps. It keeps p's
// creator as owner; revisedBy is recorded only as the last updater.
func (p *Proposal) NewRevision(newID, notes, revisedBy string, now time.Time) Proposal {
	parentID := p.ProposalID
	version := p.Version
	if version < 1 {
		version = 1
	}
	return Proposal{
		ProposalID:       newID,
		Title:            fmt.Sprintf("%s (v%d)", baseTitle(p.Title, version), version+1),
		ClientName:       p.ClientName,
		ClientEmail:      p.ClientEmail,
		Content:          p.Content,
		Status:           ProposalDraft,
		ExpiresInDays:    p.ExpiresInDays,
		Version:          version + 1,
		ParentProposalID: &parentID,
		Metadata: ProposalMetadata{
			RevisionNotes:      notes,
			RevisionReason:     RevisionReasonClientRequested,
			OriginalProposalID: parentID,
		},
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     p.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: revisedBy,
		},
	}
}

// baseTitle strips a trailing " (vN)" suffix left by an earlier revision.
func baseTitle(title string, version int) string {
	suffix := fmt.Sprintf(" (v%d)", version)
	if len(title) > len(suffix) && title[len(title)-len(suffix):] == suffix {
		return title[:len(title)-len(suffix)]
	}
	return title
}

// ProposalResponseOutcome is the recorded response plus the owner notification result.
type ProposalResponseOutcome struct {
	Proposal          Proposal
	OwnerNotification DeliveryResult
}

// ProposalApprovalStats summarises proposal outcomes.
type ProposalApprovalStats struct {
	Total             int `json:"total"`
	AwaitingResponse  int `json:"awaitingResponse"`
	Accepted          int `json:"accepted"`
	Rejected          int `json:"rejected"`
	RevisionRequested int `json:"revisionRequested"`
	Expired           int `json:"expired"`
	AcceptanceRate    int `json:"acceptanceRate"` // Percent of responded proposals that were accepted
}
