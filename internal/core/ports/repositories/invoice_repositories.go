package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
)

// ListInvoicesParams filters and pages an invoice listing.
type ListInvoicesParams struct {
	Status         domain.InvoiceStatus // Empty means any status
	Limit          int
	AfterCreatedAt *time.Time // Keyset cursor
	AfterInvoiceID string
}

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice with its line items.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices returns invoices ordered newest first.
	ListInvoices(ctx context.Context, params ListInvoicesParams) ([]domain.Invoice, error)

	// ListInvoicesByStatus returns every invoice whose status is one of statuses.
	ListInvoicesByStatus(ctx context.Context, statuses ...domain.InvoiceStatus) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice overwrites the invoice only while it is still in expectedStatus
	// with an unchanged amount paid; otherwise apperrors.ErrConflict.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice, expectedStatus domain.InvoiceStatus) error

	// TransitionInvoiceStatus moves an invoice from one status to another only if
	// it is still in from. It reports whether a row changed.
	TransitionInvoiceStatus(ctx context.Context, invoiceID string, from, to domain.InvoiceStatus, at time.Time) (bool, error)

	// DeleteInvoice removes a draft invoice. Non-draft invoices yield apperrors.ErrPrecondition.
	DeleteInvoice(ctx context.Context, invoiceID string) error

	// RecordPayment stores the payment and the updated invoice atomically, guarded
	// the same way as UpdateInvoice.
	RecordPayment(ctx context.Context, payment domain.Payment, invoice domain.Invoice, expectedStatus domain.InvoiceStatus) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
