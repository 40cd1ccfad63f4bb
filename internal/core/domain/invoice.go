package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoiceViewed    InvoiceStatus = "viewed"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// IsValid reports whether s is a known invoice status.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoiceViewed, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status can no longer change through the lifecycle.
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoicePaid || s == InvoiceCancelled
}

// LineItem is a single billable row on an invoice.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice represents a bill issued to a client.
type Invoice struct {
	InvoiceID            string          `json:"invoiceID"`
	InvoiceNumber        string          `json:"invoiceNumber"`
	ClientName           string          `json:"clientName"`
	ClientEmail          string          `json:"clientEmail"` // Empty when the client has no address on file
	Status               InvoiceStatus   `json:"status"`
	IssueDate            *time.Time      `json:"issueDate,omitempty"`
	DueDate              *time.Time      `json:"dueDate,omitempty"`
	LineItems            []LineItem      `json:"lineItems"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	TaxRate              decimal.Decimal `json:"taxRate"` // Percentage, e.g. 8.25
	TaxAmount            decimal.Decimal `json:"taxAmount"`
	DiscountAmount       decimal.Decimal `json:"discountAmount"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	AmountPaid           decimal.Decimal `json:"amountPaid"`
	BalanceDue           decimal.Decimal `json:"balanceDue"`
	Notes                string          `json:"notes"`
	PaymentLink          string          `json:"paymentLink"`
	PaymentLinkExpiresAt *time.Time      `json:"paymentLinkExpiresAt,omitempty"`
	SentAt               *time.Time      `json:"sentAt,omitempty"`
	PaidAt               *time.Time      `json:"paidAt,omitempty"`
	AuditFields
}

// RecalculateTotals derives every monetary field from the line items, tax rate,
// discount and amount paid. Line item amounts are overwritten with quantity x rate.
func (i *Invoice) RecalculateTotals() {
	subtotal := decimal.Zero
	for idx := range i.LineItems {
		item := &i.LineItems[idx]
		item.Amount = item.Quantity.Mul(item.Rate).Round(2)
		subtotal = subtotal.Add(item.Amount)
	}
	i.Subtotal = subtotal
	i.TaxAmount = subtotal.Mul(i.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
	i.TotalAmount = subtotal.Add(i.TaxAmount).Sub(i.DiscountAmount)
	if i.TotalAmount.IsNegative() {
		i.TotalAmount = decimal.Zero
	}
	i.recalculateBalance()
}

func (i *Invoice) recalculateBalance() {
	balance := i.TotalAmount.Sub(i.AmountPaid)
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	i.BalanceDue = balance
}

// AmountDue is what the client still owes. Invoices persisted before balances
// were tracked carry a zero balance, in which case the total is used.
func (i *Invoice) AmountDue() decimal.Decimal {
	if i.BalanceDue.IsPositive() {
		return i.BalanceDue
	}
	if i.AmountPaid.IsZero() {
		return i.TotalAmount
	}
	return i.BalanceDue
}

// CanDelete reports whether the invoice may be removed. Only drafts qualify.
func (i *Invoice) CanDelete() bool {
	return i.Status == InvoiceDraft
}

// AcceptsPayments reports whether a payment may be recorded against the invoice.
func (i *Invoice) AcceptsPayments() bool {
	switch i.Status {
	case InvoiceSent, InvoiceViewed, InvoiceOverdue:
		return true
	}
	return false
}

// ApplyPayment adds amount to AmountPaid and marks the invoice paid once the
// balance reaches zero.
func (i *Invoice) ApplyPayment(amount decimal.Decimal, at time.Time) {
	i.AmountPaid = i.AmountPaid.Add(amount)
	i.recalculateBalance()
	if i.BalanceDue.IsZero() {
		i.Status = InvoicePaid
		paidAt := at
		i.PaidAt = &paidAt
	}
}

// Payment is a manually recorded payment against an invoice.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	InvoiceID   string          `json:"invoiceID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      string          `json:"method"`
	Reference   string          `json:"reference"`
	AuditFields
}

// InvoiceSweepResult summarises one pass of the overdue lifecycle monitor.
type InvoiceSweepResult struct {
	UpdatedInvoices   int `json:"updatedInvoices"`
	NotificationsSent int `json:"notificationsSent"`
}

// OverdueStats aggregates the invoices currently in overdue status.
type OverdueStats struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
