package services_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gigster_garage_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	var inv *domain.Invoice
	if args.Get(0) != nil {
		inv = args.Get(0).(*domain.Invoice)
	}
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, params portsrepo.ListInvoicesParams) ([]domain.Invoice, error) {
	args := m.Called(ctx, params)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByStatus(ctx context.Context, statuses ...domain.InvoiceStatus) ([]domain.Invoice, error) {
	args := m.Called(ctx, statuses)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice, expectedStatus domain.InvoiceStatus) error {
	args := m.Called(ctx, invoice, expectedStatus)
	return args.Error(0)
}

func (m *MockInvoiceRepository) TransitionInvoiceStatus(ctx context.Context, invoiceID string, from, to domain.InvoiceStatus, at time.Time) (bool, error) {
	args := m.Called(ctx, invoiceID, from, to, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) RecordPayment(ctx context.Context, payment domain.Payment, invoice domain.Invoice, expectedStatus domain.InvoiceStatus) error {
	args := m.Called(ctx, payment, invoice, expectedStatus)
	return args.Error(0)
}

// --- Mock ProposalRepository ---
type MockProposalRepository struct {
	mock.Mock
}

func (m *MockProposalRepository) FindProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	args := m.Called(ctx, proposalID)
	var p *domain.Proposal
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Proposal)
	}
	return p, args.Error(1)
}

func (m *MockProposalRepository) FindProposalByShareableLink(ctx context.Context, link string) (*domain.Proposal, error) {
	args := m.Called(ctx, link)
	var p *domain.Proposal
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Proposal)
	}
	return p, args.Error(1)
}

func (m *MockProposalRepository) ListProposals(ctx context.Context, limit, offset int) ([]domain.Proposal, error) {
	args := m.Called(ctx, limit, offset)
	var proposals []domain.Proposal
	if args.Get(0) != nil {
		proposals = args.Get(0).([]domain.Proposal)
	}
	return proposals, args.Error(1)
}

func (m *MockProposalRepository) ListAllProposals(ctx context.Context) ([]domain.Proposal, error) {
	args := m.Called(ctx)
	var proposals []domain.Proposal
	if args.Get(0) != nil {
		proposals = args.Get(0).([]domain.Proposal)
	}
	return proposals, args.Error(1)
}

func (m *MockProposalRepository) SaveProposal(ctx context.Context, proposal domain.Proposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *MockProposalRepository) UpdateProposal(ctx context.Context, proposal domain.Proposal, expectedStatus domain.ProposalStatus) error {
	args := m.Called(ctx, proposal, expectedStatus)
	return args.Error(0)
}

func (m *MockProposalRepository) RecordProposalResponse(ctx context.Context, proposal domain.Proposal, now time.Time) (bool, error) {
	args := m.Called(ctx, proposal, now)
	return args.Bool(0), args.Error(1)
}

// --- Mock ContractRepository ---
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	args := m.Called(ctx, contractID)
	var c *domain.Contract
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Contract)
	}
	return c, args.Error(1)
}

func (m *MockContractRepository) ListContracts(ctx context.Context, limit, offset int) ([]domain.Contract, error) {
	args := m.Called(ctx, limit, offset)
	var contracts []domain.Contract
	if args.Get(0) != nil {
		contracts = args.Get(0).([]domain.Contract)
	}
	return contracts, args.Error(1)
}

func (m *MockContractRepository) ListContractsByStatus(ctx context.Context, statuses ...domain.ContractStatus) ([]domain.Contract, error) {
	args := m.Called(ctx, statuses)
	var contracts []domain.Contract
	if args.Get(0) != nil {
		contracts = args.Get(0).([]domain.Contract)
	}
	return contracts, args.Error(1)
}

func (m *MockContractRepository) SaveContract(ctx context.Context, contract domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) UpdateContract(ctx context.Context, contract domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

// --- Mock TimeLogRepository ---
type MockTimeLogRepository struct {
	mock.Mock
}

func (m *MockTimeLogRepository) FindTimeLogByID(ctx context.Context, timeLogID string) (*domain.TimeLog, error) {
	args := m.Called(ctx, timeLogID)
	var t *domain.TimeLog
	if args.Get(0) != nil {
		t = args.Get(0).(*domain.TimeLog)
	}
	return t, args.Error(1)
}

func (m *MockTimeLogRepository) FindActiveTimeLog(ctx context.Context, userID string) (*domain.TimeLog, error) {
	args := m.Called(ctx, userID)
	var t *domain.TimeLog
	if args.Get(0) != nil {
		t = args.Get(0).(*domain.TimeLog)
	}
	return t, args.Error(1)
}

func (m *MockTimeLogRepository) ListTimeLogsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.TimeLog, error) {
	args := m.Called(ctx, userID, limit, offset)
	var logs []domain.TimeLog
	if args.Get(0) != nil {
		logs = args.Get(0).([]domain.TimeLog)
	}
	return logs, args.Error(1)
}

func (m *MockTimeLogRepository) SaveTimeLog(ctx context.Context, log domain.TimeLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockTimeLogRepository) UpdateTimeLog(ctx context.Context, log domain.TimeLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock Mailer ---
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// --- Mock notifiers ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendOverdueNotice(ctx context.Context, invoice domain.Invoice, now time.Time) domain.DeliveryResult {
	args := m.Called(ctx, invoice, now)
	return args.Get(0).(domain.DeliveryResult)
}

func (m *MockNotifier) NotifyProposalResponse(ctx context.Context, proposal domain.Proposal, response domain.ProposalResponse, ownerEmail string) domain.DeliveryResult {
	args := m.Called(ctx, proposal, response, ownerEmail)
	return args.Get(0).(domain.DeliveryResult)
}

func (m *MockNotifier) SendContractExpirationNotice(ctx context.Context, contract domain.Contract, ownerEmail string, now time.Time) domain.DeliveryResult {
	args := m.Called(ctx, contract, ownerEmail, now)
	return args.Get(0).(domain.DeliveryResult)
}

func (m *MockNotifier) SendContractRenewalNotice(ctx context.Context, contract domain.Contract, ownerEmail string) domain.DeliveryResult {
	args := m.Called(ctx, contract, ownerEmail)
	return args.Get(0).(domain.DeliveryResult)
}

// recordingTracker captures analytics events.
type recordingTracker struct {
	mu     sync.Mutex
	events []trackedEvent
}

type trackedEvent struct {
	DistinctID string
	Event      string
	Properties map[string]any
}

func (r *recordingTracker) Track(distinctID, event string, properties map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, trackedEvent{DistinctID: distinctID, Event: event, Properties: properties})
}

func (r *recordingTracker) Events() []trackedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]trackedEvent(nil), r.events...)
}

var errSMTP = errors.New("smtp: connection refused")

// fixedClock returns a clock frozen at t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
