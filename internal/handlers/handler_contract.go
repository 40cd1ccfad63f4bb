package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
	"github.com/SscSPs/gigster_garage_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type contractHandler struct {
	contractService  portssvc.ContractSvcFacade
	lifecycleService portssvc.ContractLifecycleSvc
}

func newContractHandler(cs portssvc.ContractSvcFacade, ls portssvc.ContractLifecycleSvc) *contractHandler {
	return &contractHandler{
		contractService:  cs,
		lifecycleService: ls,
	}
}

func registerContractRoutes(rg *gin.RouterGroup, contractService portssvc.ContractSvcFacade, lifecycleService portssvc.ContractLifecycleSvc) {
	h := newContractHandler(contractService, lifecycleService)
	adminOnly := middleware.RequireRole(adminRole)

	contracts := rg.Group("/contracts")
	{
		contracts.POST("", h.createContract)
		contracts.GET("", h.listContracts)
		contracts.GET("/stats", adminOnly, h.getContractStats)
		contracts.POST("/status-update", adminOnly, h.runStatusUpdate)
		contracts.GET("/:id", h.getContract)
		contracts.POST("/:id/send", h.sendContract)
		contracts.POST("/:id/sign", h.signContract)
	}
}

// createContract godoc
// @Summary Create a draft contract
// @Tags contracts
// @Accept  json
// @Produce  json
// @Param   contract body dto.CreateContractRequest true "Contract details"
// @Success 201 {object} dto.ContractResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Contract number already used"
// @Failure 500 {object} dto.ErrorResponse "Failed to create contract"
// @Security BearerAuth
// @Router /contracts [post]
func (h *contractHandler) createContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	contract, err := h.contractService.CreateContract(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create contract")
		return
	}

	logger.Info("Contract created", slog.String("contract_id", contract.ContractID))
	c.JSON(http.StatusCreated, dto.ToContractResponse(contract))
}

// listContracts godoc
// @Summary List contracts
// @Tags contracts
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListContractsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list contracts"
// @Security BearerAuth
// @Router /contracts [get]
func (h *contractHandler) listContracts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	contracts, err := h.contractService.ListContracts(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list contracts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListContractsResponse(contracts))
}

// getContract godoc
// @Summary Get a contract by ID
// @Tags contracts
// @Produce  json
// @Param   id path string true "Contract ID"
// @Success 200 {object} dto.ContractResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Contract not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve contract"
// @Security BearerAuth
// @Router /contracts/{id} [get]
func (h *contractHandler) getContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("contract_id", c.Param("id")))

	contract, err := h.contractService.GetContractByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve contract")
		return
	}

	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// sendContract godoc
// @Summary Send a contract for signature
// @Tags contracts
// @Produce  json
// @Param   id path string true "Contract ID"
// @Success 200 {object} dto.ContractResponse
// @Failure 400 {object} dto.ErrorResponse "Contract is not a draft"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Contract not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to send contract"
// @Security BearerAuth
// @Router /contracts/{id}/send [post]
func (h *contractHandler) sendContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("contract_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	contract, err := h.contractService.SendContract(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to send contract")
		return
	}

	logger.Info("Contract sent")
	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// signContract godoc
// @Summary Record a signature
// @Description Fully signed once every required party has signed.
// @Tags contracts
// @Accept  json
// @Produce  json
// @Param   id path string true "Contract ID"
// @Param   signature body dto.SignContractRequest true "Signing party"
// @Success 200 {object} dto.ContractResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid party or contract not awaiting signatures"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Contract not found"
// @Failure 409 {object} dto.ErrorResponse "Party already signed"
// @Failure 500 {object} dto.ErrorResponse "Failed to sign contract"
// @Security BearerAuth
// @Router /contracts/{id}/sign [post]
func (h *contractHandler) signContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("contract_id", c.Param("id")))
	var req dto.SignContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	contract, err := h.contractService.SignContract(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to sign contract")
		return
	}

	logger.Info("Contract signed", slog.String("party", req.Party), slog.String("status", string(contract.Status)))
	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// getContractStats godoc
// @Summary Contract portfolio statistics
// @Description Admin only.
// @Tags contracts
// @Produce  json
// @Success 200 {object} domain.ContractStats
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 500 {object} dto.ErrorResponse "Failed to compute contract stats"
// @Security BearerAuth
// @Router /contracts/stats [get]
func (h *contractHandler) getContractStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.contractService.GetContractStats(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute contract stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// runStatusUpdate godoc
// @Summary Run the contract lifecycle sweep now
// @Description Sends expiry notices, renews and expires contracts. Admin only.
// @Tags contracts
// @Produce  json
// @Success 200 {object} dto.ContractStatusUpdateResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 500 {object} dto.ErrorResponse "Failed to update contract statuses"
// @Security BearerAuth
// @Router /contracts/status-update [post]
func (h *contractHandler) runStatusUpdate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.lifecycleService.RunSweep(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to update contract statuses")
		return
	}

	logger.Info("Manual contract sweep finished",
		slog.Int("expiration_warnings", result.ExpirationWarnings),
		slog.Int("auto_renewals", result.AutoRenewals),
		slog.Int("expired", result.Expired))
	c.JSON(http.StatusOK, dto.ContractStatusUpdateResponse{
		Message:            "Contract statuses updated successfully",
		ExpirationWarnings: result.ExpirationWarnings,
		AutoRenewals:       result.AutoRenewals,
		Expired:            result.Expired,
	})
}
