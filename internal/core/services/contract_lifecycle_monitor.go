package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/apperrors"
	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gigster_garage_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
)

const DefaultContractSweepInterval = 24 * time.Hour

// contractLifecycleMonitor warns about, renews and expires active contracts.
type contractLifecycleMonitor struct {
	BaseService
	contractRepo portsrepo.ContractRepositoryFacade
	userRepo     portsrepo.UserReader
	notifier     portssvc.ContractNotifier
	interval     time.Duration
	logger       *slog.Logger
	runner       *periodicRunner
}

// ContractMonitorOption is a functional option for configuring the contract lifecycle monitor
type ContractMonitorOption func(*contractLifecycleMonitor)

// WithContractSweepInterval sets how often the scheduled sweep runs.
func WithContractSweepInterval(d time.Duration) ContractMonitorOption {
	return func(m *contractLifecycleMonitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithContractMonitorClock overrides the time source.
func WithContractMonitorClock(clock func() time.Time) ContractMonitorOption {
	return func(m *contractLifecycleMonitor) {
		m.Clock = clock
	}
}

// WithContractOwnerLookup resolves the contract creator's email for notices.
func WithContractOwnerLookup(repo portsrepo.UserReader) ContractMonitorOption {
	return func(m *contractLifecycleMonitor) {
		m.userRepo = repo
	}
}

// WithContractMonitorLogger sets the logger used by scheduled sweeps.
func WithContractMonitorLogger(logger *slog.Logger) ContractMonitorOption {
	return func(m *contractLifecycleMonitor) {
		m.logger = logger
	}
}

// NewContractLifecycleMonitor creates the contract monitor. It does nothing until Start or RunSweep.
func NewContractLifecycleMonitor(repo portsrepo.ContractRepositoryFacade, notifier portssvc.ContractNotifier, options ...ContractMonitorOption) portssvc.ContractLifecycleSvc {
	m := &contractLifecycleMonitor{
		contractRepo: repo,
		notifier:     notifier,
		interval:     DefaultContractSweepInterval,
	}
	for _, option := range options {
		option(m)
	}
	m.runner = newPeriodicRunner("contract_lifecycle", m.interval, m.logger, m.scheduledSweep)
	return m
}

var _ portssvc.ContractLifecycleSvc = (*contractLifecycleMonitor)(nil)

func (m *contractLifecycleMonitor) Start(ctx context.Context) {
	m.runner.Start(ctx)
}

func (m *contractLifecycleMonitor) Stop() {
	m.runner.Stop()
}

func (m *contractLifecycleMonitor) scheduledSweep(ctx context.Context) {
	if _, err := m.RunSweep(ctx); err != nil {
		m.LogError(ctx, err, "Scheduled contract sweep failed")
	}
}

func (m *contractLifecycleMonitor) RunSweep(ctx context.Context) (domain.ContractSweepResult, error) {
	var result domain.ContractSweepResult
	now := m.Now()

	contracts, err := m.contractRepo.ListContractsByStatus(ctx, domain.ContractFullySigned, domain.ContractExecuted)
	if err != nil {
		return result, fmt.Errorf("failed to load active contracts: %w", err)
	}

	for _, contract := range contracts {
		if ctx.Err() != nil {
			m.LogWarn(ctx, ctx.Err(), "Contract sweep interrupted")
			break
		}
		switch m.processContract(ctx, contract, now) {
		case domain.ContractSendExpirationNotice:
			result.ExpirationWarnings++
		case domain.ContractAutoRenew:
			result.AutoRenewals++
		case domain.ContractMarkExpired:
			result.Expired++
		}
	}

	m.LogInfo(ctx, "Contract sweep completed",
		slog.Int("expiration_warnings", result.ExpirationWarnings),
		slog.Int("auto_renewals", result.AutoRenewals),
		slog.Int("expired", result.Expired))
	return result, nil
}

// processContract applies the due action and returns it, or ContractNoAction when
// nothing was done or the step failed.
func (m *contractLifecycleMonitor) processContract(ctx context.Context, contract domain.Contract, now time.Time) (applied domain.ContractAction) {
	logAttrs := []any{slog.String("contract_id", contract.ContractID)}
	defer func() {
		if rec := recover(); rec != nil {
			m.GetLogger(ctx).Error("Panic while processing contract", append(logAttrs, slog.Any("panic", rec))...)
			applied = domain.ContractNoAction
		}
	}()

	action := domain.EvaluateContract(contract, now)
	logAttrs = append(logAttrs, slog.String("action", action.String()))

	switch action {
	case domain.ContractSendExpirationNotice:
		delivery := m.notifier.SendContractExpirationNotice(ctx, contract, m.ownerEmail(ctx, contract), now)
		if !delivery.Delivered {
			// Left unrecorded so the next sweep tries again.
			m.LogWarn(ctx, delivery.Err, "Contract expiration notice not delivered", logAttrs...)
			return domain.ContractNoAction
		}
		contract.RecordReminder(now)

	case domain.ContractAutoRenew:
		contract.Renew()

	case domain.ContractMarkExpired:
		contract.Status = domain.ContractExpired

	default:
		return domain.ContractNoAction
	}

	contract.LastUpdatedAt = now
	if err := m.contractRepo.UpdateContract(ctx, contract); err != nil {
		m.LogError(ctx, err, "Failed to update contract", logAttrs...)
		return domain.ContractNoAction
	}
	m.LogInfo(ctx, "Contract lifecycle action applied", logAttrs...)

	if action == domain.ContractAutoRenew {
		if delivery := m.notifier.SendContractRenewalNotice(ctx, contract, m.ownerEmail(ctx, contract)); !delivery.Delivered {
			m.LogWarn(ctx, delivery.Err, "Contract renewal notice not delivered", logAttrs...)
		}
	}
	return action
}

func (m *contractLifecycleMonitor) ownerEmail(ctx context.Context, contract domain.Contract) string {
	if m.userRepo == nil || contract.CreatedBy == "" {
		return ""
	}
	owner, err := m.userRepo.FindUserByID(ctx, contract.CreatedBy)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			m.LogWarn(ctx, err, "Failed to look up contract owner", slog.String("contract_id", contract.ContractID))
		}
		return ""
	}
	return owner.Email
}
