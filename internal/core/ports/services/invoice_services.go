package services

import (
	"context"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)

	// ListOverdueInvoices returns every invoice currently overdue.
	ListOverdueInvoices(ctx context.Context) ([]domain.Invoice, error)

	// GetOverdueStats returns the number of overdue invoices and the amount outstanding on them.
	GetOverdueStats(ctx context.Context) (*domain.OverdueStats, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)

	// SendInvoice moves a draft to sent and issues a payment link.
	SendInvoice(ctx context.Context, invoiceID string, userID string) (*domain.Invoice, error)

	CancelInvoice(ctx context.Context, invoiceID string, userID string) (*domain.Invoice, error)

	// DeleteInvoice removes a draft invoice.
	DeleteInvoice(ctx context.Context, invoiceID string, userID string) error

	RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, userID string) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}

// BackgroundMonitor is a periodic job owned by the process.
type BackgroundMonitor interface {
	// Start runs one sweep immediately and then one per interval until ctx ends or Stop is called.
	Start(ctx context.Context)
	// Stop halts the schedule and waits for an in-flight sweep to finish.
	Stop()
}

// InvoiceLifecycleSvc flips sent invoices to overdue and notifies their clients.
type InvoiceLifecycleSvc interface {
	BackgroundMonitor
	// RunSweep performs one full pass synchronously. The error is non-nil only when
	// the candidate invoices could not be loaded; per-invoice failures are logged and skipped.
	RunSweep(ctx context.Context) (domain.InvoiceSweepResult, error)
}
