package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gigster_garage_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
)

const (
	DefaultInvoiceSweepInterval = time.Hour
	EventInvoiceMarkedOverdue   = "invoice_marked_overdue"
)

// invoiceLifecycleMonitor moves sent invoices past their due date to overdue
// and emails the client once per transition.
type invoiceLifecycleMonitor struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	notifier    portssvc.InvoiceNotifier
	tracker     portssvc.EventTracker
	interval    time.Duration
	logger      *slog.Logger
	runner      *periodicRunner
}

// InvoiceMonitorOption is a functional option for configuring the invoice lifecycle monitor
type InvoiceMonitorOption func(*invoiceLifecycleMonitor)

// WithInvoiceSweepInterval sets how often the scheduled sweep runs.
func WithInvoiceSweepInterval(d time.Duration) InvoiceMonitorOption {
	return func(m *invoiceLifecycleMonitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithInvoiceMonitorClock overrides the time source.
func WithInvoiceMonitorClock(clock func() time.Time) InvoiceMonitorOption {
	return func(m *invoiceLifecycleMonitor) {
		m.Clock = clock
	}
}

// WithInvoiceEventTracker records an analytics event per overdue transition.
func WithInvoiceEventTracker(tracker portssvc.EventTracker) InvoiceMonitorOption {
	return func(m *invoiceLifecycleMonitor) {
		m.tracker = tracker
	}
}

// WithInvoiceMonitorLogger sets the logger used by scheduled sweeps.
func WithInvoiceMonitorLogger(logger *slog.Logger) InvoiceMonitorOption {
	return func(m *invoiceLifecycleMonitor) {
		m.logger = logger
	}
}

// NewInvoiceLifecycleMonitor creates the overdue monitor. It does nothing until Start or RunSweep.
func NewInvoiceLifecycleMonitor(repo portsrepo.InvoiceRepositoryFacade, notifier portssvc.InvoiceNotifier, options ...InvoiceMonitorOption) portssvc.InvoiceLifecycleSvc {
	m := &invoiceLifecycleMonitor{
		invoiceRepo: repo,
		notifier:    notifier,
		interval:    DefaultInvoiceSweepInterval,
	}
	for _, option := range options {
		option(m)
	}
	m.runner = newPeriodicRunner("invoice_lifecycle", m.interval, m.logger, m.scheduledSweep)
	return m
}

var _ portssvc.InvoiceLifecycleSvc = (*invoiceLifecycleMonitor)(nil)

func (m *invoiceLifecycleMonitor) Start(ctx context.Context) {
	m.runner.Start(ctx)
}

func (m *invoiceLifecycleMonitor) Stop() {
	m.runner.Stop()
}

// scheduledSweep is the timer entry point; errors end here.
func (m *invoiceLifecycleMonitor) scheduledSweep(ctx context.Context) {
	if _, err := m.RunSweep(ctx); err != nil {
		m.LogError(ctx, err, "Scheduled invoice sweep failed")
	}
}

func (m *invoiceLifecycleMonitor) RunSweep(ctx context.Context) (domain.InvoiceSweepResult, error) {
	var result domain.InvoiceSweepResult
	now := m.Now()

	invoices, err := m.invoiceRepo.ListInvoicesByStatus(ctx, domain.InvoiceSent)
	if err != nil {
		return result, fmt.Errorf("failed to load sent invoices: %w", err)
	}
	m.LogDebug(ctx, "Checking invoices for overdue status", slog.Int("candidates", len(invoices)))

	for _, invoice := range invoices {
		if ctx.Err() != nil {
			m.LogWarn(ctx, ctx.Err(), "Invoice sweep interrupted", slog.Int("updated", result.UpdatedInvoices))
			break
		}
		updated, notified := m.processInvoice(ctx, invoice, now)
		if updated {
			result.UpdatedInvoices++
		}
		if notified {
			result.NotificationsSent++
		}
	}

	m.LogInfo(ctx, "Invoice status sweep completed",
		slog.Int("updated_invoices", result.UpdatedInvoices),
		slog.Int("notifications_sent", result.NotificationsSent))
	return result, nil
}

// processInvoice handles one candidate. Failures are logged and reported as
// no-ops so the sweep moves on to the next invoice.
func (m *invoiceLifecycleMonitor) processInvoice(ctx context.Context, invoice domain.Invoice, now time.Time) (updated, notified bool) {
	logAttrs := []any{
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
	}
	defer func() {
		if rec := recover(); rec != nil {
			m.GetLogger(ctx).Error("Panic while processing invoice", append(logAttrs, slog.Any("panic", rec))...)
		}
	}()

	transition := domain.EvaluateInvoiceStatus(invoice, now)
	if !transition.Changed {
		return false, false
	}

	changed, err := m.invoiceRepo.TransitionInvoiceStatus(ctx, invoice.InvoiceID, invoice.Status, transition.NewStatus, now)
	if err != nil {
		m.LogError(ctx, err, "Failed to mark invoice overdue", logAttrs...)
		return false, false
	}
	if !changed {
		// Another sweep or a payment got there first.
		m.LogDebug(ctx, "Invoice no longer sent, skipping", logAttrs...)
		return false, false
	}

	invoice.Status = transition.NewStatus
	updated = true
	m.LogInfo(ctx, "Invoice marked overdue", logAttrs...)

	daysOverdue := 0
	if invoice.DueDate != nil {
		daysOverdue = domain.DaysOverdue(*invoice.DueDate, now)
	}
	if m.tracker != nil {
		m.tracker.Track(invoice.CreatedBy, EventInvoiceMarkedOverdue, map[string]any{
			"invoice_id":   invoice.InvoiceID,
			"days_overdue": daysOverdue,
		})
	}

	delivery := m.notifier.SendOverdueNotice(ctx, invoice, now)
	if !delivery.Delivered && delivery.Failure != domain.DeliveryNoRecipient {
		m.LogWarn(ctx, delivery.Err, "Overdue notice not delivered",
			append(logAttrs, slog.String("failure", string(delivery.Failure)))...)
	}
	return updated, delivery.Delivered
}
