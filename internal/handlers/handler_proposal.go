package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
	"github.com/SscSPs/gigster_garage_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// proposalHandler serves both the authenticated proposal API and the public shared link.
type proposalHandler struct {
	proposalService portssvc.ProposalSvcFacade
}

func newProposalHandler(ps portssvc.ProposalSvcFacade) *proposalHandler {
	return &proposalHandler{
		proposalService: ps,
	}
}

// registerProposalRoutes registers the authenticated proposal routes.
func registerProposalRoutes(rg *gin.RouterGroup, proposalService portssvc.ProposalSvcFacade) {
	h := newProposalHandler(proposalService)
	adminOnly := middleware.RequireRole(adminRole)

	proposals := rg.Group("/proposals")
	{
		proposals.POST("", h.createProposal)
		proposals.GET("", h.listProposals)
		proposals.GET("/approval-stats", adminOnly, h.getApprovalStats)
		proposals.GET("/:id", h.getProposal)
		proposals.POST("/:id/send", h.sendProposal)
		proposals.POST("/:id/create-revision", adminOnly, h.createRevision)
	}
}

// registerSharedProposalRoutes registers the unauthenticated client-facing routes.
func registerSharedProposalRoutes(rg *gin.RouterGroup, proposalService portssvc.ProposalSvcFacade) {
	h := newProposalHandler(proposalService)

	shared := rg.Group("/proposals")
	{
		shared.GET("/:shareableLink", h.viewSharedProposal)
		shared.POST("/:shareableLink/respond", h.respondToProposal)
	}
}

// createProposal godoc
// @Summary Create a draft proposal
// @Tags proposals
// @Accept  json
// @Produce  json
// @Param   proposal body dto.CreateProposalRequest true "Proposal details"
// @Success 201 {object} dto.ProposalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create proposal"
// @Security BearerAuth
// @Router /proposals [post]
func (h *proposalHandler) createProposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	proposal, err := h.proposalService.CreateProposal(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create proposal")
		return
	}

	logger.Info("Proposal created", slog.String("proposal_id", proposal.ProposalID))
	c.JSON(http.StatusCreated, dto.ToProposalResponse(proposal))
}

// listProposals godoc
// @Summary List proposals
// @Tags proposals
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListProposalsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list proposals"
// @Security BearerAuth
// @Router /proposals [get]
func (h *proposalHandler) listProposals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	proposals, err := h.proposalService.ListProposals(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list proposals")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProposalsResponse(proposals))
}

// getProposal godoc
// @Summary Get a proposal by ID
// @Tags proposals
// @Produce  json
// @Param   id path string true "Proposal ID"
// @Success 200 {object} dto.ProposalResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Proposal not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve proposal"
// @Security BearerAuth
// @Router /proposals/{id} [get]
func (h *proposalHandler) getProposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("proposal_id", c.Param("id")))

	proposal, err := h.proposalService.GetProposalByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve proposal")
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalResponse(proposal))
}

// sendProposal godoc
// @Summary Send a draft proposal
// @Description Issues the shareable link and starts the expiry clock.
// @Tags proposals
// @Produce  json
// @Param   id path string true "Proposal ID"
// @Success 200 {object} dto.ProposalResponse
// @Failure 400 {object} dto.ErrorResponse "Proposal is not a draft"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Proposal not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to send proposal"
// @Security BearerAuth
// @Router /proposals/{id}/send [post]
func (h *proposalHandler) sendProposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("proposal_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	proposal, err := h.proposalService.SendProposal(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to send proposal")
		return
	}

	logger.Info("Proposal sent")
	c.JSON(http.StatusOK, dto.ToProposalResponse(proposal))
}

// getApprovalStats godoc
// @Summary Proposal approval statistics
// @Description Admin only.
// @Tags proposals
// @Produce  json
// @Success 200 {object} domain.ProposalApprovalStats
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 500 {object} dto.ErrorResponse "Failed to compute approval stats"
// @Security BearerAuth
// @Router /proposals/approval-stats [get]
func (h *proposalHandler) getApprovalStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.proposalService.GetApprovalStats(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute approval stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// createRevision godoc
// @Summary Create a new proposal version
// @Description Copies the proposal forward as a draft with an incremented version. Admin only.
// @Tags proposals
// @Accept  json
// @Produce  json
// @Param   id path string true "Proposal ID"
// @Param   revision body dto.CreateRevisionRequest false "Revision notes"
// @Success 201 {object} dto.CreateRevisionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 404 {object} dto.ErrorResponse "Proposal not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to create revision"
// @Security BearerAuth
// @Router /proposals/{id}/create-revision [post]
func (h *proposalHandler) createRevision(c *gin.Context) {
	proposalID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("proposal_id", proposalID))

	var req dto.CreateRevisionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, logger, err)
			return
		}
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	revision, err := h.proposalService.CreateRevision(c.Request.Context(), proposalID, req.RevisionNotes, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create revision")
		return
	}

	logger.Info("Proposal revision created", slog.String("revision_id", revision.ProposalID), slog.Int("version", revision.Version))
	c.JSON(http.StatusCreated, dto.CreateRevisionResponse{
		Message:            "Revision created successfully",
		Revision:           dto.ToProposalResponse(revision),
		OriginalProposalID: proposalID,
	})
}

// viewSharedProposal godoc
// @Summary View a shared proposal
// @Description Public. The first view of a sent proposal marks it viewed.
// @Tags shared
// @Produce  json
// @Param   shareableLink path string true "Shareable link token"
// @Success 200 {object} dto.SharedProposalResponse
// @Failure 404 {object} dto.ErrorResponse "Proposal not found"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Failed to load proposal"
// @Router /shared/proposals/{shareableLink} [get]
func (h *proposalHandler) viewSharedProposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	proposal, err := h.proposalService.ViewSharedProposal(c.Request.Context(), c.Param("shareableLink"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to load proposal")
		return
	}

	c.JSON(http.StatusOK, dto.ToSharedProposalResponse(proposal))
}

// respondToProposal godoc
// @Summary Respond to a shared proposal
// @Description Public. Records accepted, rejected or revision_requested and notifies the owner.
// @Tags shared
// @Accept  json
// @Produce  json
// @Param   shareableLink path string true "Shareable link token"
// @Param   response body dto.RespondToProposalRequest true "Client response"
// @Success 200 {object} dto.RespondToProposalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid response, expired or already answered"
// @Failure 404 {object} dto.ErrorResponse "Proposal not found"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Failed to record response"
// @Router /shared/proposals/{shareableLink}/respond [post]
func (h *proposalHandler) respondToProposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RespondToProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	outcome, err := h.proposalService.RespondToProposal(c.Request.Context(), c.Param("shareableLink"), req.Response, req.Message)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record response")
		return
	}

	logger.Info("Proposal response recorded",
		slog.String("proposal_id", outcome.Proposal.ProposalID),
		slog.String("status", string(outcome.Proposal.Status)),
		slog.Bool("owner_notified", outcome.OwnerNotification.Delivered))
	c.JSON(http.StatusOK, dto.RespondToProposalResponse{
		Message:       "Response recorded successfully",
		Proposal:      dto.ToSharedProposalResponse(&outcome.Proposal),
		OwnerNotified: outcome.OwnerNotification.Delivered,
	})
}
