package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
	"github.com/SscSPs/gigster_garage_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type timeLogHandler struct {
	timeLogService portssvc.TimeLogSvcFacade
}

func registerTimeLogRoutes(rg *gin.RouterGroup, timeLogService portssvc.TimeLogSvcFacade) {
	h := &timeLogHandler{timeLogService: timeLogService}
	adminOnly := middleware.RequireRole(adminRole)

	timelogs := rg.Group("/timelogs")
	{
		timelogs.GET("", h.listTimeLogs)
		timelogs.GET("/active", h.getActiveTimer)
		timelogs.POST("/start", h.startTimer)
		timelogs.POST("/:id/stop", h.stopTimer)
		timelogs.POST("/:id/approve", adminOnly, h.reviewTimeLog(domain.ApprovalApproved))
		timelogs.POST("/:id/reject", adminOnly, h.reviewTimeLog(domain.ApprovalRejected))
	}
}

// startTimer godoc
// @Summary Start a timer
// @Tags timelogs
// @Accept  json
// @Produce  json
// @Param   timer body dto.StartTimerRequest true "What is being worked on"
// @Success 201 {object} dto.TimeLogResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "A timer is already running"
// @Failure 500 {object} dto.ErrorResponse "Failed to start timer"
// @Security BearerAuth
// @Router /timelogs/start [post]
func (h *timeLogHandler) startTimer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.StartTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	timeLog, err := h.timeLogService.StartTimer(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to start timer")
		return
	}

	logger.Info("Timer started", slog.String("time_log_id", timeLog.TimeLogID))
	c.JSON(http.StatusCreated, dto.ToTimeLogResponse(timeLog))
}

// stopTimer godoc
// @Summary Stop a running timer
// @Tags timelogs
// @Produce  json
// @Param   id path string true "Time log ID"
// @Success 200 {object} dto.TimeLogResponse
// @Failure 400 {object} dto.ErrorResponse "Timer is not running"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Timer belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Time log not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to stop timer"
// @Security BearerAuth
// @Router /timelogs/{id}/stop [post]
func (h *timeLogHandler) stopTimer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("time_log_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	timeLog, err := h.timeLogService.StopTimer(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to stop timer")
		return
	}

	logger.Info("Timer stopped", slog.Int64("duration_seconds", timeLog.DurationSeconds))
	c.JSON(http.StatusOK, dto.ToTimeLogResponse(timeLog))
}

// getActiveTimer godoc
// @Summary Get the caller's running timer
// @Tags timelogs
// @Produce  json
// @Success 200 {object} dto.TimeLogResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "No timer running"
// @Failure 500 {object} dto.ErrorResponse "Failed to load active timer"
// @Security BearerAuth
// @Router /timelogs/active [get]
func (h *timeLogHandler) getActiveTimer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	timeLog, err := h.timeLogService.GetActiveTimer(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to load active timer")
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeLogResponse(timeLog))
}

// listTimeLogs godoc
// @Summary List the caller's time logs
// @Tags timelogs
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListTimeLogsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list time logs"
// @Security BearerAuth
// @Router /timelogs [get]
func (h *timeLogHandler) listTimeLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logs, err := h.timeLogService.ListTimeLogs(c.Request.Context(), userID, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list time logs")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTimeLogsResponse(logs))
}

// reviewTimeLog godoc
// @Summary Approve or reject a stopped time log
// @Description Admin only.
// @Tags timelogs
// @Produce  json
// @Param   id path string true "Time log ID"
// @Success 200 {object} dto.TimeLogResponse
// @Failure 400 {object} dto.ErrorResponse "Timer still running"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 404 {object} dto.ErrorResponse "Time log not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to review time log"
// @Security BearerAuth
// @Router /timelogs/{id}/approve [post]
// @Router /timelogs/{id}/reject [post]
func (h *timeLogHandler) reviewTimeLog(decision domain.ApprovalStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
			slog.String("time_log_id", c.Param("id")),
			slog.String("decision", string(decision)))
		reviewerID, ok := requireUserID(c, logger)
		if !ok {
			return
		}

		timeLog, err := h.timeLogService.ReviewTimeLog(c.Request.Context(), c.Param("id"), decision, reviewerID)
		if err != nil {
			respondWithError(c, logger, err, "Failed to review time log")
			return
		}

		logger.Info("Time log reviewed")
		c.JSON(http.StatusOK, dto.ToTimeLogResponse(timeLog))
	}
}
