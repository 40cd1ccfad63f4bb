package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/gigster_garage_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
	"github.com/SscSPs/gigster_garage_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// tracker may be nil, in which case no analytics events are emitted.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailer portssvc.Mailer, tracker portssvc.EventTracker, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Users and tokens first, the rest look up owners through the user repo
	userService := NewUserService(repos.UserRepo)
	container.User = userService
	container.Token = NewTokenService(cfg)
	container.Auth = NewAuthService(userService, container.Token)

	dispatcher := NewNotificationDispatcher(mailer, NotificationSettings{
		BusinessName:         cfg.BusinessName,
		BillingFromAddress:   cfg.BillingFromAddress,
		ProposalsFromAddress: cfg.ProposalsFromAddress,
		LegalFromAddress:     cfg.LegalFromAddress,
		OwnerFallbackEmail:   cfg.OwnerFallbackEmail,
	})

	container.Invoice = NewInvoiceService(
		repos.InvoiceRepo,
		WithPaymentLinks(cfg.PaymentLinkBaseURL, cfg.PaymentLinkTTL),
	)
	container.InvoiceLifecycle = NewInvoiceLifecycleMonitor(
		repos.InvoiceRepo,
		dispatcher,
		WithInvoiceSweepInterval(cfg.InvoiceSweepInterval),
		WithInvoiceEventTracker(tracker),
		WithInvoiceMonitorLogger(logger),
	)

	container.Proposal = NewProposalService(
		repos.ProposalRepo,
		WithProposalNotifier(dispatcher),
		WithProposalOwnerLookup(repos.UserRepo),
		WithProposalEventTracker(tracker),
		WithProposalDefaultExpiry(cfg.ProposalDefaultExpiryDays),
	)

	container.Contract = NewContractService(repos.ContractRepo)
	container.ContractLifecycle = NewContractLifecycleMonitor(
		repos.ContractRepo,
		dispatcher,
		WithContractSweepInterval(cfg.ContractSweepInterval),
		WithContractOwnerLookup(repos.UserRepo),
		WithContractMonitorLogger(logger),
	)

	container.TimeLog = NewTimeLogService(repos.TimeLogRepo)

	return container
}
