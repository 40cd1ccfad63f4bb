package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/apperrors"
	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gigster_garage_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// expiringSoonWindow bounds the "expiring soon" bucket in contract stats.
const expiringSoonWindow = 30

// contractService implements the ContractSvcFacade interface
type contractService struct {
	BaseService
	contractRepo portsrepo.ContractRepositoryFacade
}

// ContractServiceOption is a functional option for configuring the contract service
type ContractServiceOption func(*contractService)

// WithContractClock overrides the time source.
func WithContractClock(clock func() time.Time) ContractServiceOption {
	return func(s *contractService) {
		s.Clock = clock
	}
}

// NewContractService creates a new contract service with the provided options
func NewContractService(repo portsrepo.ContractRepositoryFacade, options ...ContractServiceOption) portssvc.ContractSvcFacade {
	svc := &contractService{contractRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ContractSvcFacade = (*contractService)(nil)

func (s *contractService) CreateContract(ctx context.Context, req dto.CreateContractRequest, creatorUserID string) (*domain.Contract, error) {
	if req.EffectiveDate != nil && req.ExpirationDate != nil && !req.ExpirationDate.After(*req.EffectiveDate) {
		return nil, fmt.Errorf("%w: expiration date must be after effective date", apperrors.ErrValidation)
	}

	now := s.Now()
	number := strings.TrimSpace(req.ContractNumber)
	if number == "" {
		generated, err := generateDocumentNumber("CTR", now)
		if err != nil {
			s.LogError(ctx, err, "Failed to generate contract number")
			return nil, fmt.Errorf("failed to generate contract number: %w", err)
		}
		number = generated
	}

	contract := domain.Contract{
		ContractID:        uuid.NewString(),
		ContractNumber:    number,
		Title:             req.Title,
		ClientName:        req.ClientName,
		ClientEmail:       req.ClientEmail,
		Content:           req.Content,
		Status:            domain.ContractDraft,
		ContractValue:     req.ContractValue,
		Currency:          req.Currency,
		EffectiveDate:     req.EffectiveDate,
		ExpirationDate:    req.ExpirationDate,
		AutoRenewal:       req.AutoRenewal,
		RenewalPeriodDays: domain.DefaultRenewalPeriodDays,
		NoticePeriodDays:  domain.DefaultNoticePeriodDays,
		RequiresSignature: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if contract.Currency == "" {
		contract.Currency = "USD"
	}
	if req.RenewalPeriodDays != nil {
		contract.RenewalPeriodDays = *req.RenewalPeriodDays
	}
	if req.NoticePeriodDays != nil {
		contract.NoticePeriodDays = *req.NoticePeriodDays
	}
	if req.RequiresSignature != nil {
		contract.RequiresSignature = *req.RequiresSignature
	}

	if err := s.contractRepo.SaveContract(ctx, contract); err != nil {
		s.LogError(ctx, err, "Failed to save contract", slog.String("contract_number", number))
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}
	s.LogInfo(ctx, "Contract created", slog.String("contract_id", contract.ContractID))
	return &contract, nil
}

func (s *contractService) GetContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	contract, err := s.contractRepo.FindContractByID(ctx, contractID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get contract", slog.String("contract_id", contractID))
		}
		return nil, fmt.Errorf("failed to get contract %s: %w", contractID, err)
	}
	return contract, nil
}

func (s *contractService) ListContracts(ctx context.Context, params dto.PageParams) ([]domain.Contract, error) {
	contracts, err := s.contractRepo.ListContracts(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contracts")
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	return contracts, nil
}

func (s *contractService) SendContract(ctx context.Context, contractID string, userID string) (*domain.Contract, error) {
	contract, err := s.GetContractByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract.Status != domain.ContractDraft {
		return nil, fmt.Errorf("%w: only draft contracts can be sent (status %s)", apperrors.ErrPrecondition, contract.Status)
	}

	now := s.Now()
	contract.Status = domain.ContractPendingSignature
	contract.SentAt = &now
	contract.LastUpdatedAt = now
	contract.LastUpdatedBy = userID
	if err := s.contractRepo.UpdateContract(ctx, *contract); err != nil {
		s.LogError(ctx, err, "Failed to update contract on send", slog.String("contract_id", contractID))
		return nil, fmt.Errorf("failed to send contract: %w", err)
	}
	return contract, nil
}

func (s *contractService) SignContract(ctx context.Context, contractID string, req dto.SignContractRequest, userID string) (*domain.Contract, error) {
	party := domain.SignatureParty(req.Party)
	if !party.IsValid() {
		return nil, fmt.Errorf("%w: party must be business or client", apperrors.ErrValidation)
	}

	contract, err := s.GetContractByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if !contract.Status.AwaitingSignature() {
		return nil, fmt.Errorf("%w: contract in status %s cannot be signed", apperrors.ErrPrecondition, contract.Status)
	}

	now := s.Now()
	if !contract.Sign(party, req.SignerName, now) {
		return nil, fmt.Errorf("%w: %s party has already signed", apperrors.ErrConflict, party)
	}
	contract.LastUpdatedAt = now
	contract.LastUpdatedBy = userID

	if err := s.contractRepo.UpdateContract(ctx, *contract); err != nil {
		s.LogError(ctx, err, "Failed to record signature", slog.String("contract_id", contractID))
		return nil, fmt.Errorf("failed to sign contract: %w", err)
	}
	s.LogInfo(ctx, "Contract signed",
		slog.String("contract_id", contractID),
		slog.String("party", string(party)),
		slog.String("status", string(contract.Status)))
	return contract, nil
}

func (s *contractService) GetContractStats(ctx context.Context) (*domain.ContractStats, error) {
	contracts, err := s.contractRepo.ListContractsByStatus(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load contracts for stats")
		return nil, fmt.Errorf("failed to compute contract stats: %w", err)
	}

	now := s.Now()
	stats := &domain.ContractStats{Total: len(contracts), ActiveValue: decimal.Zero}
	for i := range contracts {
		c := &contracts[i]
		switch {
		case c.Status.IsActive():
			stats.Active++
			stats.ActiveValue = stats.ActiveValue.Add(c.ContractValue)
			if c.AutoRenewal {
				stats.AutoRenewals++
			}
			if c.ExpirationDate != nil {
				if days := c.DaysUntil(now); days >= 0 && days <= expiringSoonWindow {
					stats.ExpiringSoon++
				}
			}
		case c.Status == domain.ContractExpired:
			stats.Expired++
		case c.Status.AwaitingSignature():
			stats.PendingSignatures++
		}
	}
	return stats, nil
}
