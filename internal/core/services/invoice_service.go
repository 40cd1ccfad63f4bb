package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/apperrors"
	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gigster_garage_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
	"github.com/SscSPs/gigster_garage_backend/internal/dto"
	"github.com/SscSPs/gigster_garage_backend/internal/utils"
	"github.com/SscSPs/gigster_garage_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPaymentLinkTTL   = 30 * 24 * time.Hour
	paymentLinkTokenBytes   = 24
	invoiceNumberSuffixSize = 3
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo        portsrepo.InvoiceRepositoryFacade
	paymentLinkTTL     time.Duration
	paymentLinkBaseURL string
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithPaymentLinks configures where issued payment links point and how long they live.
func WithPaymentLinks(baseURL string, ttl time.Duration) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.paymentLinkBaseURL = strings.TrimRight(baseURL, "/")
		if ttl > 0 {
			s.paymentLinkTTL = ttl
		}
	}
}

// WithInvoiceClock overrides the time source.
func WithInvoiceClock(clock func() time.Time) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.Clock = clock
	}
}

// NewInvoiceService creates a new invoice service with the provided options
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo:    repo,
		paymentLinkTTL: DefaultPaymentLinkTTL,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	if req.IssueDate != nil && req.DueDate != nil && req.DueDate.Before(*req.IssueDate) {
		return nil, fmt.Errorf("%w: due date cannot be before issue date", apperrors.ErrValidation)
	}

	number := strings.TrimSpace(req.InvoiceNumber)
	now := s.Now()
	if number == "" {
		generated, err := generateDocumentNumber("INV", now)
		if err != nil {
			s.LogError(ctx, err, "Failed to generate invoice number")
			return nil, fmt.Errorf("failed to generate invoice number: %w", err)
		}
		number = generated
	}

	items := make([]domain.LineItem, len(req.LineItems))
	for i, item := range req.LineItems {
		items[i] = domain.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		}
	}

	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		InvoiceNumber:  number,
		ClientName:     req.ClientName,
		ClientEmail:    strings.TrimSpace(req.ClientEmail),
		Status:         domain.InvoiceDraft,
		IssueDate:      req.IssueDate,
		DueDate:        req.DueDate,
		LineItems:      items,
		TaxRate:        req.TaxRate,
		DiscountAmount: req.DiscountAmount,
		AmountPaid:     decimal.Zero,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	invoice.RecalculateTotals()

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_number", number))
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("total", invoice.TotalAmount.StringFixed(2)))
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, fmt.Errorf("failed to get invoice %s: %w", invoiceID, err)
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	repoParams := portsrepo.ListInvoicesParams{
		Status: domain.InvoiceStatus(params.Status),
		Limit:  limit + 1, // one extra row tells us whether another page exists
	}
	if params.NextToken != "" {
		createdAt, id, err := pagination.DecodeCursor(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		repoParams.AfterCreatedAt = &createdAt
		repoParams.AfterInvoiceID = id
	}

	invoices, err := s.invoiceRepo.ListInvoices(ctx, repoParams)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	resp := &dto.ListInvoicesResponse{}
	if len(invoices) > limit {
		invoices = invoices[:limit]
		last := invoices[len(invoices)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.InvoiceID)
		resp.NextToken = &token
	}
	resp.Invoices = dto.ToInvoiceResponseSlice(invoices)
	return resp, nil
}

func (s *invoiceService) ListOverdueInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoicesByStatus(ctx, domain.InvoiceOverdue)
	if err != nil {
		s.LogError(ctx, err, "Failed to list overdue invoices")
		return nil, fmt.Errorf("failed to list overdue invoices: %w", err)
	}
	return invoices, nil
}

func (s *invoiceService) GetOverdueStats(ctx context.Context) (*domain.OverdueStats, error) {
	invoices, err := s.ListOverdueInvoices(ctx)
	if err != nil {
		return nil, err
	}
	stats := &domain.OverdueStats{TotalAmount: decimal.Zero}
	for i := range invoices {
		stats.Count++
		stats.TotalAmount = stats.TotalAmount.Add(invoices[i].AmountDue())
	}
	return stats, nil
}

func (s *invoiceService) SendInvoice(ctx context.Context, invoiceID string, userID string) (*domain.Invoice, error) {
	invoice, err := s.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status != domain.InvoiceDraft {
		return nil, fmt.Errorf("%w: only draft invoices can be sent (status %s)", apperrors.ErrPrecondition, invoice.Status)
	}

	token, err := utils.GenerateURLToken(paymentLinkTokenBytes)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate payment link token", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to generate payment link: %w", err)
	}

	now := s.Now()
	expiresAt := now.Add(s.paymentLinkTTL)
	prevStatus := invoice.Status
	invoice.Status = domain.InvoiceSent
	invoice.SentAt = &now
	if invoice.IssueDate == nil {
		issued := domain.LocalDate(now)
		invoice.IssueDate = &issued
	}
	invoice.PaymentLink = s.paymentLinkBaseURL + "/" + token
	invoice.PaymentLinkExpiresAt = &expiresAt
	invoice.LastUpdatedAt = now
	invoice.LastUpdatedBy = userID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice, prevStatus); err != nil {
		s.LogError(ctx, err, "Failed to update invoice on send", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to send invoice: %w", err)
	}
	s.LogInfo(ctx, "Invoice sent", slog.String("invoice_id", invoiceID))
	return invoice, nil
}

func (s *invoiceService) CancelInvoice(ctx context.Context, invoiceID string, userID string) (*domain.Invoice, error) {
	invoice, err := s.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: invoice is already %s", apperrors.ErrPrecondition, invoice.Status)
	}

	prevStatus := invoice.Status
	invoice.Status = domain.InvoiceCancelled
	invoice.LastUpdatedAt = s.Now()
	invoice.LastUpdatedBy = userID
	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice, prevStatus); err != nil {
		s.LogError(ctx, err, "Failed to cancel invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to cancel invoice: %w", err)
	}
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string, userID string) error {
	invoice, err := s.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if !invoice.CanDelete() {
		return fmt.Errorf("%w: only draft invoices can be deleted", apperrors.ErrPrecondition)
	}
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID), slog.String("user_id", userID))
	return nil
}

func (s *invoiceService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, userID string) (*domain.Invoice, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	invoice, err := s.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if !invoice.AcceptsPayments() {
		return nil, fmt.Errorf("%w: invoice in status %s does not accept payments", apperrors.ErrPrecondition, invoice.Status)
	}
	if req.Amount.GreaterThan(invoice.AmountDue()) {
		return nil, fmt.Errorf("%w: payment of %s exceeds amount due %s", apperrors.ErrValidation,
			req.Amount.StringFixed(2), invoice.AmountDue().StringFixed(2))
	}

	now := s.Now()
	paidOn := now
	if req.PaymentDate != nil {
		paidOn = *req.PaymentDate
	}

	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		InvoiceID:   invoice.InvoiceID,
		Amount:      req.Amount,
		PaymentDate: paidOn,
		Method:      req.Method,
		Reference:   req.Reference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	prevStatus := invoice.Status
	invoice.ApplyPayment(req.Amount, paidOn)
	invoice.LastUpdatedAt = now
	invoice.LastUpdatedBy = userID

	if err := s.invoiceRepo.RecordPayment(ctx, payment, *invoice, prevStatus); err != nil {
		s.LogError(ctx, err, "Failed to record payment", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	s.LogInfo(ctx, "Payment recorded",
		slog.String("invoice_id", invoiceID),
		slog.String("amount", req.Amount.StringFixed(2)),
		slog.String("status", string(invoice.Status)))
	return invoice, nil
}

// generateDocumentNumber builds identifiers such as INV-20250105-3FA9C1.
func generateDocumentNumber(prefix string, now time.Time) (string, error) {
	suffix, err := utils.GenerateSecureRandomString(invoiceNumberSuffixSize)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), strings.ToUpper(suffix)), nil
}
