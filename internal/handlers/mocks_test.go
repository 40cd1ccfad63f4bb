package handlers_test

import (
	"context"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListInvoicesResponse), args.Error(1)
}
func (m *MockInvoiceService) ListOverdueInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) GetOverdueStats(ctx context.Context) (*domain.OverdueStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OverdueStats), args.Error(1)
}
func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) SendInvoice(ctx context.Context, invoiceID string, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) CancelInvoice(ctx context.Context, invoiceID string, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, invoiceID string, userID string) error {
	args := m.Called(ctx, invoiceID, userID)
	return args.Error(0)
}
func (m *MockInvoiceService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock InvoiceLifecycle ---
type MockInvoiceLifecycle struct {
	mock.Mock
}

func (m *MockInvoiceLifecycle) Start(ctx context.Context) { m.Called(ctx) }
func (m *MockInvoiceLifecycle) Stop()                     { m.Called() }
func (m *MockInvoiceLifecycle) RunSweep(ctx context.Context) (domain.InvoiceSweepResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.InvoiceSweepResult), args.Error(1)
}

var _ portssvc.InvoiceLifecycleSvc = (*MockInvoiceLifecycle)(nil)

// --- Mock ProposalService ---
type MockProposalService struct {
	mock.Mock
}

func (m *MockProposalService) GetProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockProposalService) ListProposals(ctx context.Context, params dto.PageParams) ([]domain.Proposal, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Proposal), args.Error(1)
}
func (m *MockProposalService) GetApprovalStats(ctx context.Context) (*domain.ProposalApprovalStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProposalApprovalStats), args.Error(1)
}
func (m *MockProposalService) CreateProposal(ctx context.Context, req dto.CreateProposalRequest, creatorUserID string) (*domain.Proposal, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockProposalService) SendProposal(ctx context.Context, proposalID string, userID string) (*domain.Proposal, error) {
	args := m.Called(ctx, proposalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockProposalService) ViewSharedProposal(ctx context.Context, link string) (*domain.Proposal, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockProposalService) RespondToProposal(ctx context.Context, link string, response string, message string) (*domain.ProposalResponseOutcome, error) {
	args := m.Called(ctx, link, response, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProposalResponseOutcome), args.Error(1)
}
func (m *MockProposalService) CreateRevision(ctx context.Context, proposalID string, revisionNotes string, userID string) (*domain.Proposal, error) {
	args := m.Called(ctx, proposalID, revisionNotes, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}

var _ portssvc.ProposalSvcFacade = (*MockProposalService)(nil)

// --- Mock ContractService ---
type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) GetContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) ListContracts(ctx context.Context, params dto.PageParams) ([]domain.Contract, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractService) GetContractStats(ctx context.Context) (*domain.ContractStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractStats), args.Error(1)
}
func (m *MockContractService) CreateContract(ctx context.Context, req dto.CreateContractRequest, creatorUserID string) (*domain.Contract, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) SendContract(ctx context.Context, contractID string, userID string) (*domain.Contract, error) {
	args := m.Called(ctx, contractID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) SignContract(ctx context.Context, contractID string, req dto.SignContractRequest, userID string) (*domain.Contract, error) {
	args := m.Called(ctx, contractID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

var _ portssvc.ContractSvcFacade = (*MockContractService)(nil)

// --- Mock ContractLifecycle ---
type MockContractLifecycle struct {
	mock.Mock
}

func (m *MockContractLifecycle) Start(ctx context.Context) { m.Called(ctx) }
func (m *MockContractLifecycle) Stop()                     { m.Called() }
func (m *MockContractLifecycle) RunSweep(ctx context.Context) (domain.ContractSweepResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ContractSweepResult), args.Error(1)
}

var _ portssvc.ContractLifecycleSvc = (*MockContractLifecycle)(nil)

// --- Mock TimeLogService ---
type MockTimeLogService struct {
	mock.Mock
}

func (m *MockTimeLogService) StartTimer(ctx context.Context, req dto.StartTimerRequest, userID string) (*domain.TimeLog, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeLog), args.Error(1)
}
func (m *MockTimeLogService) StopTimer(ctx context.Context, timeLogID string, userID string) (*domain.TimeLog, error) {
	args := m.Called(ctx, timeLogID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeLog), args.Error(1)
}
func (m *MockTimeLogService) GetActiveTimer(ctx context.Context, userID string) (*domain.TimeLog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeLog), args.Error(1)
}
func (m *MockTimeLogService) ListTimeLogs(ctx context.Context, userID string, params dto.PageParams) ([]domain.TimeLog, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeLog), args.Error(1)
}
func (m *MockTimeLogService) ReviewTimeLog(ctx context.Context, timeLogID string, decision domain.ApprovalStatus, reviewerID string) (*domain.TimeLog, error) {
	args := m.Called(ctx, timeLogID, decision, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeLog), args.Error(1)
}

var _ portssvc.TimeLogSvcFacade = (*MockTimeLogService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) EnsureAdmin(ctx context.Context, email, name, password string) error {
	args := m.Called(ctx, email, name, password)
	return args.Error(0)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)
