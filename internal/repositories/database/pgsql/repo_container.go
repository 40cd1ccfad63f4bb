package pgsql

import (
	portsrepo "github.com/SscSPs/gigster_garage_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
		ProposalRepo: newPgxProposalRepository(dbPool),
		ContractRepo: newPgxContractRepository(dbPool),
		TimeLogRepo:  newPgxTimeLogRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
