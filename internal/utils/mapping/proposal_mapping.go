package mapping

import (
	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/SscSPs/gigster_garage_backend/internal/models"
)

// ToModelProposal converts a domain Proposal to a model Proposal
func ToModelProposal(d domain.Proposal) models.Proposal {
	return models.Proposal{
		ProposalID:       d.ProposalID,
		Title:            d.Title,
		ClientName:       d.ClientName,
		ClientEmail:      nullString(d.ClientEmail),
		Content:          d.Content,
		Status:           string(d.Status),
		ShareableLink:    nullString(d.ShareableLink),
		ExpiresInDays:    d.ExpiresInDays,
		ExpiresAt:        d.ExpiresAt,
		SentAt:           d.SentAt,
		ViewedAt:         d.ViewedAt,
		RespondedAt:      d.RespondedAt,
		AcceptedAt:       d.AcceptedAt,
		ResponseMessage:  nullString(d.ResponseMessage),
		Version:          d.Version,
		ParentProposalID: d.ParentProposalID,
		Metadata: models.ProposalMetadata{
			RevisionNotes:      d.Metadata.RevisionNotes,
			RevisionReason:     d.Metadata.RevisionReason,
			OriginalProposalID: d.Metadata.OriginalProposalID,
		},
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProposal converts a model Proposal to a domain Proposal
func ToDomainProposal(m models.Proposal) domain.Proposal {
	return domain.Proposal{
		ProposalID:       m.ProposalID,
		Title:            m.Title,
		ClientName:       m.ClientName,
		ClientEmail:      m.ClientEmail.String,
		Content:          m.Content,
		Status:           domain.ProposalStatus(m.Status),
		ShareableLink:    m.ShareableLink.String,
		ExpiresInDays:    m.ExpiresInDays,
		ExpiresAt:        m.ExpiresAt,
		SentAt:           m.SentAt,
		ViewedAt:         m.ViewedAt,
		RespondedAt:      m.RespondedAt,
		AcceptedAt:       m.AcceptedAt,
		ResponseMessage:  m.ResponseMessage.String,
		Version:          m.Version,
		ParentProposalID: m.ParentProposalID,
		Metadata: domain.ProposalMetadata{
			RevisionNotes:      m.Metadata.RevisionNotes,
			RevisionReason:     m.Metadata.RevisionReason,
			OriginalProposalID: m.Metadata.OriginalProposalID,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProposalSlice converts a slice of model Proposals to a slice of domain Proposals
func ToDomainProposalSlice(ms []models.Proposal) []domain.Proposal {
	ds := make([]domain.Proposal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProposal(m)
	}
	return ds
}
