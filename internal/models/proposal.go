package models

import (
	"database/sql"
	"time"
)

// ProposalMetadata is the JSON shape of proposals.metadata.
type ProposalMetadata struct {
	RevisionNotes      string `json:"revisionNotes,omitempty"`
	RevisionReason     string `json:"revisionReason,omitempty"`
	OriginalProposalID string `json:"originalProposalId,omitempty"`
}

// Proposal is a row of the proposals table.
type Proposal struct {
	ProposalID       string           `db:"proposal_id"`
	Title            string           `db:"title"`
	ClientName       string           `db:"client_name"`
	ClientEmail      sql.NullString   `db:"client_email"`
	Content          string           `db:"content"`
	Status           string           `db:"status"`
	ShareableLink    sql.NullString   `db:"shareable_link"` // Unique when set
	ExpiresInDays    int              `db:"expires_in_days"`
	ExpiresAt        *time.Time       `db:"expires_at"`
	SentAt           *time.Time       `db:"sent_at"`
	ViewedAt         *time.Time       `db:"viewed_at"`
	RespondedAt      *time.Time       `db:"responded_at"`
	AcceptedAt       *time.Time       `db:"accepted_at"`
	ResponseMessage  sql.NullString   `db:"response_message"`
	Version          int              `db:"version"`
	ParentProposalID *string          `db:"parent_proposal_id"`
	Metadata         ProposalMetadata `db:"metadata"`
	AuditFields
}
