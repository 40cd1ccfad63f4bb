package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
	"github.com/SscSPs/gigster_garage_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService   portssvc.InvoiceSvcFacade
	lifecycleService portssvc.InvoiceLifecycleSvc
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade, ls portssvc.InvoiceLifecycleSvc) *invoiceHandler {
	return &invoiceHandler{
		invoiceService:   is,
		lifecycleService: ls,
	}
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, lifecycleService portssvc.InvoiceLifecycleSvc) {
	h := newInvoiceHandler(invoiceService, lifecycleService)
	adminOnly := middleware.RequireRole(adminRole)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.POST("/status-update", adminOnly, h.runStatusUpdate)
		invoices.GET("/overdue", h.listOverdueInvoices)
		invoices.GET("/overdue-stats", adminOnly, h.getOverdueStats)
		invoices.GET("/:id", h.getInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)
		invoices.POST("/:id/send", h.sendInvoice)
		invoices.POST("/:id/cancel", h.cancelInvoice)
		invoices.POST("/:id/payments", h.recordPayment)
	}
}

// createInvoice godoc
// @Summary Create a draft invoice
// @Description Totals are computed from the line items, tax rate and discount.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Invoice number already used"
// @Failure 500 {object} dto.ErrorResponse "Failed to create invoice"
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create invoice", slog.String("client_name", req.ClientName), slog.Int("line_items", len(req.LineItems)))

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create invoice")
		return
	}

	logger.Info("Invoice created successfully", slog.String("invoice_id", invoice.InvoiceID))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Description Newest first. Pass the returned nextToken to fetch the following page.
// @Tags invoices
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token"
// @Param   status query string false "Filter by status" Enums(draft, sent, viewed, paid, overdue, cancelled)
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list invoices"
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	resp, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list invoices")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getInvoice godoc
// @Summary Get an invoice by ID
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve invoice"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("invoice_id", c.Param("id")))

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// sendInvoice godoc
// @Summary Send a draft invoice
// @Description Marks the invoice sent and issues a payment link.
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse "Invoice is not a draft"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to send invoice"
// @Security BearerAuth
// @Router /invoices/{id}/send [post]
func (h *invoiceHandler) sendInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("invoice_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.SendInvoice(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to send invoice")
		return
	}

	logger.Info("Invoice sent")
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// cancelInvoice godoc
// @Summary Cancel an invoice
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse "Invoice is already paid or cancelled"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to cancel invoice"
// @Security BearerAuth
// @Router /invoices/{id}/cancel [post]
func (h *invoiceHandler) cancelInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("invoice_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.CancelInvoice(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to cancel invoice")
		return
	}

	logger.Info("Invoice cancelled")
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// deleteInvoice godoc
// @Summary Delete a draft invoice
// @Tags invoices
// @Param   id path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Only drafts can be deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete invoice"
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("invoice_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondWithError(c, logger, err, "Failed to delete invoice")
		return
	}

	logger.Info("Invoice deleted")
	c.Status(http.StatusNoContent)
}

// recordPayment godoc
// @Summary Record a manual payment
// @Description The invoice becomes paid once its balance reaches zero.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid amount or invoice not payable"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent payment"
// @Failure 500 {object} dto.ErrorResponse "Failed to record payment"
// @Security BearerAuth
// @Router /invoices/{id}/payments [post]
func (h *invoiceHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("invoice_id", c.Param("id")))
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.RecordPayment(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Payment recorded", slog.String("amount", req.Amount.String()), slog.String("status", string(invoice.Status)))
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// runStatusUpdate godoc
// @Summary Run the overdue sweep now
// @Description Marks past-due sent invoices overdue and emails their clients. Admin only.
// @Tags invoices
// @Produce  json
// @Success 200 {object} dto.InvoiceStatusUpdateResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 500 {object} dto.ErrorResponse "Failed to update invoice statuses"
// @Security BearerAuth
// @Router /invoices/status-update [post]
func (h *invoiceHandler) runStatusUpdate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.lifecycleService.RunSweep(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to update invoice statuses")
		return
	}

	logger.Info("Manual invoice sweep finished",
		slog.Int("updated_invoices", result.UpdatedInvoices),
		slog.Int("notifications_sent", result.NotificationsSent))
	c.JSON(http.StatusOK, dto.InvoiceStatusUpdateResponse{
		Message:           "Invoice statuses updated successfully",
		UpdatedInvoices:   result.UpdatedInvoices,
		NotificationsSent: result.NotificationsSent,
	})
}

// listOverdueInvoices godoc
// @Summary List overdue invoices
// @Tags invoices
// @Produce  json
// @Success 200 {object} dto.OverdueInvoicesResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list overdue invoices"
// @Security BearerAuth
// @Router /invoices/overdue [get]
func (h *invoiceHandler) listOverdueInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoices, err := h.invoiceService.ListOverdueInvoices(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list overdue invoices")
		return
	}

	c.JSON(http.StatusOK, dto.OverdueInvoicesResponse{
		Invoices: dto.ToInvoiceResponseSlice(invoices),
		Count:    len(invoices),
	})
}

// getOverdueStats godoc
// @Summary Overdue invoice totals
// @Description Count of overdue invoices and the outstanding amount on them. Admin only.
// @Tags invoices
// @Produce  json
// @Success 200 {object} dto.OverdueStatsResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 500 {object} dto.ErrorResponse "Failed to compute overdue stats"
// @Security BearerAuth
// @Router /invoices/overdue-stats [get]
func (h *invoiceHandler) getOverdueStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.invoiceService.GetOverdueStats(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute overdue stats")
		return
	}

	c.JSON(http.StatusOK, dto.OverdueStatsResponse{
		Count:       stats.Count,
		TotalAmount: stats.TotalAmount,
	})
}
