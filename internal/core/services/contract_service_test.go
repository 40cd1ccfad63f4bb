package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/apperrors"
	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
	"github.com/SscSPs/gigster_garage_backend/internal/core/services"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var activeContractStatuses = []domain.ContractStatus{domain.ContractFullySigned, domain.ContractExecuted}

type ContractServiceTestSuite struct {
	suite.Suite
	repo    *MockContractRepository
	now     time.Time
	service portssvc.ContractSvcFacade
}

func (suite *ContractServiceTestSuite) SetupTest() {
	suite.repo = new(MockContractRepository)
	suite.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewContractService(suite.repo, services.WithContractClock(fixedClock(suite.now)))
}

func (suite *ContractServiceTestSuite) TestCreateContract_Defaults() {
	ctx := context.Background()
	suite.repo.On("SaveContract", ctx, mock.AnythingOfType("domain.Contract")).Return(nil).Once()

	c, err := suite.service.CreateContract(ctx, dto.CreateContractRequest{
		Title: "Retainer", ClientName: "Acme", Content: "Terms", ContractValue: dec("1200"),
	}, "owner-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ContractDraft, c.Status)
	suite.Equal("USD", c.Currency)
	suite.Equal(domain.DefaultNoticePeriodDays, c.NoticePeriodDays)
	suite.Equal(domain.DefaultRenewalPeriodDays, c.RenewalPeriodDays)
	suite.True(c.RequiresSignature)
}

func (suite *ContractServiceTestSuite) TestCreateContract_ExpirationBeforeEffective() {
	_, err := suite.service.CreateContract(context.Background(), dto.CreateContractRequest{
		Title: "Retainer", ClientName: "Acme", Content: "Terms",
		EffectiveDate:  timePtr(date(2025, 6, 1)),
		ExpirationDate: timePtr(date(2025, 5, 1)),
	}, "owner-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ContractServiceTestSuite) TestSignContract_BothPartiesFullySign() {
	ctx := context.Background()
	c := &domain.Contract{ContractID: "c-1", Status: domain.ContractPendingSignature, RequiresSignature: true}
	suite.repo.On("FindContractByID", ctx, "c-1").Return(c, nil).Twice()
	suite.repo.On("UpdateContract", ctx, mock.Anything).Return(nil).Twice()

	signed, err := suite.service.SignContract(ctx, "c-1", dto.SignContractRequest{Party: "business", SignerName: "Owner"}, "owner-1")
	suite.Require().NoError(err)
	suite.Equal(domain.ContractPartiallySigned, signed.Status)

	signed, err = suite.service.SignContract(ctx, "c-1", dto.SignContractRequest{Party: "client", SignerName: "Client"}, "owner-1")
	suite.Require().NoError(err)
	suite.Equal(domain.ContractFullySigned, signed.Status)
}

func (suite *ContractServiceTestSuite) TestSignContract_SameDealTwiceConflicts() {
	ctx := context.Background()
	c := &domain.Contract{ContractID: "c-1", Status: domain.ContractPartiallySigned, RequiresSignature: true, BusinessSignedAt: timePtr(suite.now)}
	suite.repo.On("FindContractByID", ctx, "c-1").Return(c, nil).Once()

	_, err := suite.service.SignContract(ctx, "c-1", dto.SignContractRequest{Party: "business", SignerName: "Owner"}, "owner-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ContractServiceTestSuite) TestSignContract_DraftCannotBeSigned() {
	ctx := context.Background()
	suite.repo.On("FindContractByID", ctx, "c-1").Return(&domain.Contract{ContractID: "c-1", Status: domain.ContractDraft}, nil).Once()

	_, err := suite.service.SignContract(ctx, "c-1", dto.SignContractRequest{Party: "client", SignerName: "Client"}, "owner-1")

	suite.ErrorIs(err, apperrors.ErrPrecondition)
}

func (suite *ContractServiceTestSuite) TestSendContract() {
	ctx := context.Background()
	suite.repo.On("FindContractByID", ctx, "c-1").Return(&domain.Contract{ContractID: "c-1", Status: domain.ContractDraft}, nil).Once()
	suite.repo.On("UpdateContract", ctx, mock.Anything).Return(nil).Once()

	c, err := suite.service.SendContract(ctx, "c-1", "owner-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ContractPendingSignature, c.Status)
	suite.Equal(suite.now, *c.SentAt)
}

func (suite *ContractServiceTestSuite) TestGetContractStats() {
	ctx := context.Background()
	contracts := []domain.Contract{
		{Status: domain.ContractFullySigned, ContractValue: dec("1000"), ExpirationDate: timePtr(date(2025, 6, 20)), AutoRenewal: true},
		{Status: domain.ContractExecuted, ContractValue: dec("500"), ExpirationDate: timePtr(date(2026, 1, 1))},
		{Status: domain.ContractExpired, ContractValue: dec("900")},
		{Status: domain.ContractPendingSignature},
		{Status: domain.ContractDraft},
	}
	suite.repo.On("ListContractsByStatus", ctx, []domain.ContractStatus(nil)).Return(contracts, nil).Once()

	stats, err := suite.service.GetContractStats(ctx)

	suite.Require().NoError(err)
	suite.Equal(5, stats.Total)
	suite.Equal(2, stats.Active)
	suite.Equal(1, stats.ExpiringSoon)
	suite.Equal(1, stats.Expired)
	suite.Equal(1, stats.PendingSignatures)
	suite.Equal(1, stats.AutoRenewals)
	suite.True(dec("1500").Equal(stats.ActiveValue))
}

func TestContractServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContractServiceTestSuite))
}

// --- Contract lifecycle monitor ---

type ContractLifecycleMonitorTestSuite struct {
	suite.Suite
	repo     *MockContractRepository
	users    *MockUserRepository
	notifier *MockNotifier
	now      time.Time
	monitor  portssvc.ContractLifecycleSvc
}

func (suite *ContractLifecycleMonitorTestSuite) SetupTest() {
	suite.repo = new(MockContractRepository)
	suite.users = new(MockUserRepository)
	suite.notifier = new(MockNotifier)
	suite.now = time.Date(2025, 6, 20, 8, 0, 0, 0, time.UTC)
	suite.monitor = services.NewContractLifecycleMonitor(suite.repo, suite.notifier,
		services.WithContractOwnerLookup(suite.users),
		services.WithContractMonitorClock(fixedClock(suite.now)),
	)
}

func activeContract(id string, expires time.Time) domain.Contract {
	return domain.Contract{
		ContractID:        id,
		Title:             "Retainer " + id,
		Status:            domain.ContractFullySigned,
		ExpirationDate:    timePtr(expires),
		NoticePeriodDays:  30,
		RenewalPeriodDays: 365,
		AuditFields:       domain.AuditFields{CreatedBy: "owner-1"},
	}
}

func (suite *ContractLifecycleMonitorTestSuite) TestRunSweep_AllActions() {
	notice := activeContract("notice", date(2025, 7, 1))
	renew := activeContract("renew", date(2025, 6, 1))
	renew.AutoRenewal = true
	expire := activeContract("expire", date(2025, 6, 1))
	quiet := activeContract("quiet", date(2026, 6, 1))

	suite.repo.On("ListContractsByStatus", mock.Anything, activeContractStatuses).
		Return([]domain.Contract{notice, renew, expire, quiet}, nil).Once()
	suite.users.On("FindUserByID", mock.Anything, "owner-1").Return(&domain.User{Email: "owner@gigster.test"}, nil)
	suite.notifier.On("SendContractExpirationNotice", mock.Anything, mock.Anything, "owner@gigster.test", suite.now).
		Return(domain.DeliverySucceeded()).Once()
	suite.notifier.On("SendContractRenewalNotice", mock.Anything, mock.Anything, "owner@gigster.test").
		Return(domain.DeliverySucceeded()).Once()

	suite.repo.On("UpdateContract", mock.Anything, mock.MatchedBy(func(c domain.Contract) bool {
		return c.ContractID == "notice" && c.ReminderCount == 1 && c.LastReminderSent != nil
	})).Return(nil).Once()
	suite.repo.On("UpdateContract", mock.Anything, mock.MatchedBy(func(c domain.Contract) bool {
		return c.ContractID == "renew" && c.ExpirationDate.Equal(date(2026, 6, 1))
	})).Return(nil).Once()
	suite.repo.On("UpdateContract", mock.Anything, mock.MatchedBy(func(c domain.Contract) bool {
		return c.ContractID == "expire" && c.Status == domain.ContractExpired
	})).Return(nil).Once()

	result, err := suite.monitor.RunSweep(context.Background())

	suite.Require().NoError(err)
	suite.Equal(domain.ContractSweepResult{ExpirationWarnings: 1, AutoRenewals: 1, Expired: 1}, result)
	suite.repo.AssertExpectations(suite.T())
	suite.notifier.AssertExpectations(suite.T())
}

func (suite *ContractLifecycleMonitorTestSuite) TestRunSweep_UndeliveredNoticeIsRetriedLater() {
	notice := activeContract("notice", date(2025, 7, 1))
	suite.repo.On("ListContractsByStatus", mock.Anything, activeContractStatuses).Return([]domain.Contract{notice}, nil).Once()
	suite.users.On("FindUserByID", mock.Anything, "owner-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.notifier.On("SendContractExpirationNotice", mock.Anything, mock.Anything, "", suite.now).
		Return(domain.NotDelivered(domain.DeliveryTransportFailed, errSMTP)).Once()

	result, err := suite.monitor.RunSweep(context.Background())

	suite.Require().NoError(err)
	suite.Zero(result.ExpirationWarnings)
	suite.repo.AssertNotCalled(suite.T(), "UpdateContract", mock.Anything, mock.Anything)
}

func (suite *ContractLifecycleMonitorTestSuite) TestRunSweep_UpdateFailureSkipsContract() {
	expire := activeContract("expire", date(2025, 6, 1))
	suite.repo.On("ListContractsByStatus", mock.Anything, activeContractStatuses).Return([]domain.Contract{expire}, nil).Once()
	suite.repo.On("UpdateContract", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	result, err := suite.monitor.RunSweep(context.Background())

	suite.Require().NoError(err)
	suite.Zero(result.Expired)
}

func TestContractLifecycleMonitorTestSuite(t *testing.T) {
	suite.Run(t, new(ContractLifecycleMonitorTestSuite))
}
