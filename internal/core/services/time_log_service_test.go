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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TimeLogServiceTestSuite struct {
	suite.Suite
	repo    *MockTimeLogRepository
	now     time.Time
	service portssvc.TimeLogSvcFacade
}

func (suite *TimeLogServiceTestSuite) SetupTest() {
	suite.repo = new(MockTimeLogRepository)
	suite.now = time.Date(2025, 4, 2, 15, 30, 0, 0, time.UTC)
	suite.service = services.NewTimeLogService(suite.repo, services.WithTimeLogClock(fixedClock(suite.now)))
}

func (suite *TimeLogServiceTestSuite) TestStartTimer_Success() {
	ctx := context.Background()
	suite.repo.On("FindActiveTimeLog", ctx, "user-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("SaveTimeLog", ctx, mock.AnythingOfType("domain.TimeLog")).Return(nil).Once()

	log, err := suite.service.StartTimer(ctx, dto.StartTimerRequest{Description: "Design review"}, "user-1")

	suite.Require().NoError(err)
	suite.True(log.IsActive)
	suite.Equal(suite.now, log.StartTime)
	suite.Equal(domain.ApprovalPending, log.ApprovalStatus)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *TimeLogServiceTestSuite) TestStartTimer_AlreadyRunning() {
	ctx := context.Background()
	suite.repo.On("FindActiveTimeLog", ctx, "user-1").Return(&domain.TimeLog{TimeLogID: "t-1", IsActive: true}, nil).Once()

	_, err := suite.service.StartTimer(ctx, dto.StartTimerRequest{Description: "Another"}, "user-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.repo.AssertNotCalled(suite.T(), "SaveTimeLog", mock.Anything, mock.Anything)
}

func (suite *TimeLogServiceTestSuite) TestStartTimer_ConcurrentStartRejectedByStore() {
	ctx := context.Background()
	suite.repo.On("FindActiveTimeLog", ctx, "user-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("SaveTimeLog", ctx, mock.Anything).Return(apperrors.ErrConflict).Once()

	_, err := suite.service.StartTimer(ctx, dto.StartTimerRequest{Description: "Race"}, "user-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *TimeLogServiceTestSuite) TestStopTimer() {
	ctx := context.Background()
	running := &domain.TimeLog{TimeLogID: "t-1", UserID: "user-1", StartTime: suite.now.Add(-90 * time.Minute), IsActive: true}
	suite.repo.On("FindTimeLogByID", ctx, "t-1").Return(running, nil).Once()
	suite.repo.On("UpdateTimeLog", ctx, mock.Anything).Return(nil).Once()

	log, err := suite.service.StopTimer(ctx, "t-1", "user-1")

	suite.Require().NoError(err)
	suite.False(log.IsActive)
	suite.Equal(int64(5400), log.DurationSeconds)
	suite.Equal(suite.now, *log.EndTime)
}

func (suite *TimeLogServiceTestSuite) TestStopTimer_OtherUsersLog() {
	ctx := context.Background()
	suite.repo.On("FindTimeLogByID", ctx, "t-1").Return(&domain.TimeLog{TimeLogID: "t-1", UserID: "user-2", IsActive: true}, nil).Once()

	_, err := suite.service.StopTimer(ctx, "t-1", "user-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TimeLogServiceTestSuite) TestStopTimer_NotRunning() {
	ctx := context.Background()
	suite.repo.On("FindTimeLogByID", ctx, "t-1").Return(&domain.TimeLog{TimeLogID: "t-1", UserID: "user-1"}, nil).Once()

	_, err := suite.service.StopTimer(ctx, "t-1", "user-1")

	suite.ErrorIs(err, apperrors.ErrPrecondition)
}

func (suite *TimeLogServiceTestSuite) TestReviewTimeLog() {
	ctx := context.Background()
	suite.repo.On("FindTimeLogByID", ctx, "t-1").Return(&domain.TimeLog{TimeLogID: "t-1", UserID: "user-1"}, nil).Once()
	suite.repo.On("UpdateTimeLog", ctx, mock.MatchedBy(func(t domain.TimeLog) bool {
		return t.ApprovalStatus == domain.ApprovalApproved && t.LastUpdatedBy == "admin-1"
	})).Return(nil).Once()

	log, err := suite.service.ReviewTimeLog(ctx, "t-1", domain.ApprovalApproved, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ApprovalApproved, log.ApprovalStatus)
}

func (suite *TimeLogServiceTestSuite) TestReviewTimeLog_InvalidDecision() {
	_, err := suite.service.ReviewTimeLog(context.Background(), "t-1", domain.ApprovalPending, "admin-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "FindTimeLogByID", mock.Anything, mock.Anything)
}

func (suite *TimeLogServiceTestSuite) TestReviewTimeLog_StillRunning() {
	ctx := context.Background()
	suite.repo.On("FindTimeLogByID", ctx, "t-1").Return(&domain.TimeLog{TimeLogID: "t-1", IsActive: true}, nil).Once()

	_, err := suite.service.ReviewTimeLog(ctx, "t-1", domain.ApprovalRejected, "admin-1")

	suite.ErrorIs(err, apperrors.ErrPrecondition)
}

func TestTimeLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimeLogServiceTestSuite))
}
