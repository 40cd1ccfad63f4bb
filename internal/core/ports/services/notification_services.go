package services

import (
	"context"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
)

// Mailer delivers a single email. Implementations make exactly one attempt.
type Mailer interface {
	Send(ctx context.Context, msg domain.EmailMessage) error
}

// EventTracker records product analytics events. Implementations must not block.
type EventTracker interface {
	Track(distinctID, event string, properties map[string]any)
}

// InvoiceNotifier sends invoice lifecycle emails to clients.
type InvoiceNotifier interface {
	// SendOverdueNotice emails the client of a newly overdue invoice.
	SendOverdueNotice(ctx context.Context, invoice domain.Invoice, now time.Time) domain.DeliveryResult
}

// ProposalNotifier tells the business owner about client activity on proposals.
type ProposalNotifier interface {
	NotifyProposalResponse(ctx context.Context, proposal domain.Proposal, response domain.ProposalResponse, ownerEmail string) domain.DeliveryResult
}

// ContractNotifier tells the business owner about contract lifecycle events.
type ContractNotifier interface {
	SendContractExpirationNotice(ctx context.Context, contract domain.Contract, ownerEmail string, now time.Time) domain.DeliveryResult
	SendContractRenewalNotice(ctx context.Context, contract domain.Contract, ownerEmail string) domain.DeliveryResult
}

// NotificationDispatcherSvc combines every notifier.
type NotificationDispatcherSvc interface {
	InvoiceNotifier
	ProposalNotifier
	ContractNotifier
}
