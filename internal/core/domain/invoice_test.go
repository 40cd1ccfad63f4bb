package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestInvoice_RecalculateTotals(t *testing.T) {
	inv := domain.Invoice{
		LineItems: []domain.LineItem{
			{Description: "Design", Quantity: dec("10"), Rate: dec("85")},
			{Description: "Hosting", Quantity: dec("1"), Rate: dec("49.99")},
		},
		TaxRate:        dec("10"),
		DiscountAmount: dec("50"),
		AmountPaid:     dec("100"),
	}

	inv.RecalculateTotals()

	assert.True(t, dec("850").Equal(inv.LineItems[0].Amount))
	assert.True(t, dec("899.99").Equal(inv.Subtotal))
	assert.True(t, dec("90").Equal(inv.TaxAmount))
	assert.True(t, dec("939.99").Equal(inv.TotalAmount))
	assert.True(t, dec("839.99").Equal(inv.BalanceDue))
}

func TestInvoice_BalanceNeverNegative(t *testing.T) {
	inv := domain.Invoice{
		LineItems:  []domain.LineItem{{Quantity: dec("1"), Rate: dec("100")}},
		AmountPaid: dec("150"),
	}

	inv.RecalculateTotals()

	assert.True(t, inv.BalanceDue.IsZero())
}

func TestInvoice_ApplyPayment(t *testing.T) {
	now := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	inv := domain.Invoice{Status: domain.InvoiceOverdue, TotalAmount: dec("500"), BalanceDue: dec("500")}

	inv.ApplyPayment(dec("200"), now)
	assert.Equal(t, domain.InvoiceOverdue, inv.Status)
	assert.True(t, dec("300").Equal(inv.BalanceDue))
	assert.Nil(t, inv.PaidAt)

	inv.ApplyPayment(dec("300"), now)
	assert.Equal(t, domain.InvoicePaid, inv.Status)
	assert.True(t, inv.BalanceDue.IsZero())
	if assert.NotNil(t, inv.PaidAt) {
		assert.Equal(t, now, *inv.PaidAt)
	}
}

func TestInvoice_AmountDue(t *testing.T) {
	legacy := domain.Invoice{TotalAmount: dec("120")}
	assert.True(t, dec("120").Equal(legacy.AmountDue()))

	partial := domain.Invoice{TotalAmount: dec("120"), AmountPaid: dec("20"), BalanceDue: dec("100")}
	assert.True(t, dec("100").Equal(partial.AmountDue()))

	settled := domain.Invoice{TotalAmount: dec("120"), AmountPaid: dec("120")}
	assert.True(t, settled.AmountDue().IsZero())
}

func TestInvoice_CanDelete(t *testing.T) {
	for _, status := range []domain.InvoiceStatus{domain.InvoiceSent, domain.InvoiceViewed, domain.InvoicePaid, domain.InvoiceOverdue, domain.InvoiceCancelled} {
		inv := domain.Invoice{Status: status}
		assert.False(t, inv.CanDelete(), string(status))
	}
	draft := domain.Invoice{Status: domain.InvoiceDraft}
	assert.True(t, draft.CanDelete())
}
