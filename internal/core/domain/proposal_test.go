package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalResponse_IsValid(t *testing.T) {
	assert.True(t, domain.ResponseAccepted.IsValid())
	assert.True(t, domain.ResponseRejected.IsValid())
	assert.True(t, domain.ResponseRevisionRequested.IsValid())
	assert.False(t, domain.ProposalResponse("maybe").IsValid())
	assert.False(t, domain.ProposalResponse("").IsValid())
	assert.False(t, domain.ProposalResponse("viewed").IsValid())
}

func TestProposal_IsExpired(t *testing.T) {
	now := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

	p := domain.Proposal{ExpiresAt: timePtr(date(2025, 1, 1))}
	assert.True(t, p.IsExpired(now))

	p.ExpiresAt = timePtr(date(2025, 1, 3))
	assert.False(t, p.IsExpired(now))

	p.ExpiresAt = nil
	assert.False(t, p.IsExpired(now))
}

func TestProposal_ApplyResponse(t *testing.T) {
	now := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

	t.Run("accepted sets acceptedAt and respondedAt", func(t *testing.T) {
		p := domain.Proposal{Status: domain.ProposalSent}
		p.ApplyResponse(domain.ResponseAccepted, "looks great", now)

		assert.Equal(t, domain.ProposalAccepted, p.Status)
		require.NotNil(t, p.RespondedAt)
		require.NotNil(t, p.AcceptedAt)
		assert.Equal(t, now, *p.AcceptedAt)
		assert.Equal(t, "looks great", p.ResponseMessage)
	})

	for _, r := range []domain.ProposalResponse{domain.ResponseRejected, domain.ResponseRevisionRequested} {
		t.Run(string(r)+" only sets respondedAt", func(t *testing.T) {
			p := domain.Proposal{Status: domain.ProposalViewed}
			p.ApplyResponse(r, "", now)

			assert.Equal(t, domain.ProposalStatus(r), p.Status)
			assert.NotNil(t, p.RespondedAt)
			assert.Nil(t, p.AcceptedAt)
		})
	}
}

func TestProposal_MarkViewed(t *testing.T) {
	now := time.Now()
	p := domain.Proposal{Status: domain.ProposalSent}

	assert.True(t, p.MarkViewed(now))
	assert.Equal(t, domain.ProposalViewed, p.Status)
	assert.False(t, p.MarkViewed(now.Add(time.Minute)))
	assert.Equal(t, now, *p.ViewedAt)
}

func TestProposal_NewRevision(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	original := domain.Proposal{
		ProposalID:      "p-1",
		Title:           "Website redesign",
		ClientName:      "Acme",
		ClientEmail:     "ops@acme.test",
		Content:         "scope",
		Status:          domain.ProposalRevisionRequested,
		ShareableLink:   "abc",
		ResponseMessage: "cheaper please",
		Version:         1,
		ExpiresInDays:   14,
		AuditFields:     domain.AuditFields{CreatedBy: "owner-1"},
	}

	rev := original.NewRevision("p-2", "trimmed scope", "admin-1", now)

	assert.Equal(t, "p-2", rev.ProposalID)
	assert.Equal(t, "Website redesign (v2)", rev.Title)
	assert.Equal(t, domain.ProposalDraft, rev.Status)
	assert.Equal(t, 2, rev.Version)
	require.NotNil(t, rev.ParentProposalID)
	assert.Equal(t, "p-1", *rev.ParentProposalID)
	assert.Empty(t, rev.ShareableLink)
	assert.Nil(t, rev.RespondedAt)
	assert.Equal(t, "trimmed scope", rev.Metadata.RevisionNotes)
	assert.Equal(t, domain.RevisionReasonClientRequested, rev.Metadata.RevisionReason)
	assert.Equal(t, "owner-1", rev.CreatedBy)
	assert.Equal(t, "admin-1", rev.LastUpdatedBy)
	assert.Equal(t, 14, rev.ExpiresInDays)

	third := rev.NewRevision("p-3", "", "admin-1", now)
	assert.Equal(t, "Website redesign (v3)", third.Title)
	assert.Equal(t, 3, third.Version)
	assert.Equal(t, "owner-1", third.CreatedBy)

	// original untouched
	assert.Equal(t, domain.ProposalRevisionRequested, original.Status)
	assert.Equal(t, 1, original.Version)
}
