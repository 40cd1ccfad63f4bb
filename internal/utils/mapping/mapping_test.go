package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInvoiceMappingNullsEmptyStrings(t *testing.T) {
	inv := domain.Invoice{
		InvoiceID: "inv-1",
		Status:    domain.InvoiceDraft,
		LineItems: []domain.LineItem{{Description: "Design", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(50), Amount: decimal.NewFromInt(100)}},
	}

	m := ToModelInvoice(inv)

	assert.False(t, m.ClientEmail.Valid)
	assert.False(t, m.PaymentLink.Valid)
	assert.Equal(t, "draft", m.Status)
	assert.Len(t, m.LineItems, 1)
	assert.Equal(t, inv, ToDomainInvoice(m))
}

func TestProposalMappingKeepsRevisionLink(t *testing.T) {
	parent := "p-1"
	expires := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	p := domain.Proposal{
		ProposalID:       "p-2",
		Status:           domain.ProposalSent,
		ShareableLink:    "tok",
		ExpiresAt:        &expires,
		Version:          2,
		ParentProposalID: &parent,
		Metadata:         domain.ProposalMetadata{OriginalProposalID: parent, RevisionNotes: "tighter scope"},
	}

	m := ToModelProposal(p)

	assert.True(t, m.ShareableLink.Valid)
	assert.False(t, m.ResponseMessage.Valid)
	assert.Equal(t, p, ToDomainProposal(m))
}
