package repositories

import (
	"context"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
)

// ContractReader defines read operations for contract data
type ContractReader interface {
	FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error)

	ListContracts(ctx context.Context, limit, offset int) ([]domain.Contract, error)

	// ListContractsByStatus returns every contract whose status is one of statuses.
	// With no statuses it returns all contracts.
	ListContractsByStatus(ctx context.Context, statuses ...domain.ContractStatus) ([]domain.Contract, error)
}

// ContractWriter defines write operations for contract data
type ContractWriter interface {
	SaveContract(ctx context.Context, contract domain.Contract) error

	UpdateContract(ctx context.Context, contract domain.Contract) error
}

// ContractRepositoryFacade combines all contract-related repository interfaces
type ContractRepositoryFacade interface {
	ContractReader
	ContractWriter
}
