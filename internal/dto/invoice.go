package dto

import (
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one billable row in a create request.
type LineItemRequest struct {
	Description string          `json:"description" binding:"required,max=500"`
	Quantity    decimal.Decimal `json:"quantity" binding:"gt=0"`
	Rate        decimal.Decimal `json:"rate" binding:"gte=0"`
}

// CreateInvoiceRequest defines the data needed to create a draft invoice.
type CreateInvoiceRequest struct {
	InvoiceNumber  string            `json:"invoiceNumber" binding:"omitempty,max=50"` // Generated when empty
	ClientName     string            `json:"clientName" binding:"required,max=200"`
	ClientEmail    string            `json:"clientEmail" binding:"omitempty,email"`
	IssueDate      *time.Time        `json:"issueDate"`
	DueDate        *time.Time        `json:"dueDate"`
	LineItems      []LineItemRequest `json:"lineItems" binding:"required,min=1,dive"`
	TaxRate        decimal.Decimal   `json:"taxRate" binding:"gte=0,lte=100"`
	DiscountAmount decimal.Decimal   `json:"discountAmount" binding:"gte=0"`
	Notes          string            `json:"notes" binding:"max=2000"`
}

// RecordPaymentRequest records a manual payment.
type RecordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"gt=0"`
	PaymentDate *time.Time      `json:"paymentDate"` // Defaults to now
	Method      string          `json:"method" binding:"omitempty,max=50"`
	Reference   string          `json:"reference" binding:"omitempty,max=200"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
	Status    string `form:"status" binding:"omitempty,oneof=draft sent viewed paid overdue cancelled"`
}

// LineItemResponse is one billable row.
type LineItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse is the API view of an invoice.
type InvoiceResponse struct {
	InvoiceID            string             `json:"invoiceID"`
	InvoiceNumber        string             `json:"invoiceNumber"`
	ClientName           string             `json:"clientName"`
	ClientEmail          string             `json:"clientEmail,omitempty"`
	Status               string             `json:"status"`
	IssueDate            *time.Time         `json:"issueDate,omitempty"`
	DueDate              *time.Time         `json:"dueDate,omitempty"`
	LineItems            []LineItemResponse `json:"lineItems"`
	Subtotal             decimal.Decimal    `json:"subtotal"`
	TaxRate              decimal.Decimal    `json:"taxRate"`
	TaxAmount            decimal.Decimal    `json:"taxAmount"`
	DiscountAmount       decimal.Decimal    `json:"discountAmount"`
	TotalAmount          decimal.Decimal    `json:"totalAmount"`
	AmountPaid           decimal.Decimal    `json:"amountPaid"`
	BalanceDue           decimal.Decimal    `json:"balanceDue"`
	Notes                string             `json:"notes,omitempty"`
	PaymentLink          string             `json:"paymentLink,omitempty"`
	PaymentLinkExpiresAt *time.Time         `json:"paymentLinkExpiresAt,omitempty"`
	SentAt               *time.Time         `json:"sentAt,omitempty"`
	PaidAt               *time.Time         `json:"paidAt,omitempty"`
	CreatedAt            time.Time          `json:"createdAt"`
	CreatedBy            string             `json:"createdBy"`
	LastUpdatedAt        time.Time          `json:"lastUpdatedAt"`
}

// ListInvoicesResponse wraps a page of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// InvoiceStatusUpdateResponse is returned by the manual overdue sweep.
type InvoiceStatusUpdateResponse struct {
	Message           string `json:"message"`
	UpdatedInvoices   int    `json:"updatedInvoices"`
	NotificationsSent int    `json:"notificationsSent"`
}

// OverdueStatsResponse aggregates overdue invoices.
type OverdueStatsResponse struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// OverdueInvoicesResponse lists invoices currently overdue.
type OverdueInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Count    int               `json:"count"`
}

// ToInvoiceResponse converts a domain.Invoice to an InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, len(inv.LineItems))
	for i, li := range inv.LineItems {
		items[i] = LineItemResponse{
			Description: li.Description,
			Quantity:    li.Quantity,
			Rate:        li.Rate,
			Amount:      li.Amount,
		}
	}
	return InvoiceResponse{
		InvoiceID:            inv.InvoiceID,
		InvoiceNumber:        inv.InvoiceNumber,
		ClientName:           inv.ClientName,
		ClientEmail:          inv.ClientEmail,
		Status:               string(inv.Status),
		IssueDate:            inv.IssueDate,
		DueDate:              inv.DueDate,
		LineItems:            items,
		Subtotal:             inv.Subtotal,
		TaxRate:              inv.TaxRate,
		TaxAmount:            inv.TaxAmount,
		DiscountAmount:       inv.DiscountAmount,
		TotalAmount:          inv.TotalAmount,
		AmountPaid:           inv.AmountPaid,
		BalanceDue:           inv.BalanceDue,
		Notes:                inv.Notes,
		PaymentLink:          inv.PaymentLink,
		PaymentLinkExpiresAt: inv.PaymentLinkExpiresAt,
		SentAt:               inv.SentAt,
		PaidAt:               inv.PaidAt,
		CreatedAt:            inv.CreatedAt,
		CreatedBy:            inv.CreatedBy,
		LastUpdatedAt:        inv.LastUpdatedAt,
	}
}

// ToInvoiceResponseSlice converts a slice of invoices.
func ToInvoiceResponseSlice(invoices []domain.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i])
	}
	return out
}
