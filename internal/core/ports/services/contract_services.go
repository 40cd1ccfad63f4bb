package services

import (
	"context"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
)

// ContractReaderSvc defines read operations for contracts
type ContractReaderSvc interface {
	GetContractByID(ctx context.Context, contractID string) (*domain.Contract, error)

	ListContracts(ctx context.Context, params dto.PageParams) ([]domain.Contract, error)

	GetContractStats(ctx context.Context) (*domain.ContractStats, error)
}

// ContractWriterSvc defines write operations for contracts
type ContractWriterSvc interface {
	CreateContract(ctx context.Context, req dto.CreateContractRequest, creatorUserID string) (*domain.Contract, error)

	SendContract(ctx context.Context, contractID string, userID string) (*domain.Contract, error)

	// SignContract records a signature; the contract only becomes fully signed once every required party has signed.
	SignContract(ctx context.Context, contractID string, req dto.SignContractRequest, userID string) (*domain.Contract, error)
}

// ContractSvcFacade combines all contract-related service interfaces
type ContractSvcFacade interface {
	ContractReaderSvc
	ContractWriterSvc
}

// ContractLifecycleSvc sends expiry notices, renews and expires active contracts.
type ContractLifecycleSvc interface {
	BackgroundMonitor
	RunSweep(ctx context.Context) (domain.ContractSweepResult, error)
}
