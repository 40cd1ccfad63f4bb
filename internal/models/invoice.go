package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is the JSON shape of one entry in invoices.line_items.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice is a row of the invoices table. Line items are stored as JSONB.
type Invoice struct {
	InvoiceID            string          `db:"invoice_id"`
	InvoiceNumber        string          `db:"invoice_number"`
	ClientName           string          `db:"client_name"`
	ClientEmail          sql.NullString  `db:"client_email"`
	Status               string          `db:"status"`
	IssueDate            *time.Time      `db:"issue_date"`
	DueDate              *time.Time      `db:"due_date"`
	LineItems            []LineItem      `db:"line_items"`
	Subtotal             decimal.Decimal `db:"subtotal"`
	TaxRate              decimal.Decimal `db:"tax_rate"`
	TaxAmount            decimal.Decimal `db:"tax_amount"`
	DiscountAmount       decimal.Decimal `db:"discount_amount"`
	TotalAmount          decimal.Decimal `db:"total_amount"`
	AmountPaid           decimal.Decimal `db:"amount_paid"`
	BalanceDue           decimal.Decimal `db:"balance_due"`
	Notes                string          `db:"notes"`
	PaymentLink          sql.NullString  `db:"payment_link"`
	PaymentLinkExpiresAt *time.Time      `db:"payment_link_expires_at"`
	SentAt               *time.Time      `db:"sent_at"`
	PaidAt               *time.Time      `db:"paid_at"`
	AuditFields
}

// Payment is a row of the payments table.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	InvoiceID   string          `db:"invoice_id"`
	Amount      decimal.Decimal `db:"amount"`
	PaymentDate time.Time       `db:"payment_date"`
	Method      string          `db:"method"`
	Reference   string          `db:"reference"`
	AuditFields
}
