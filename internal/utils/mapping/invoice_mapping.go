package mapping

import (
	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/SscSPs/gigster_garage_backend/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	items := make([]models.LineItem, len(d.LineItems))
	for i, li := range d.LineItems {
		items[i] = models.LineItem{Description: li.Description, Quantity: li.Quantity, Rate: li.Rate, Amount: li.Amount}
	}
	return models.Invoice{
		InvoiceID:            d.InvoiceID,
		InvoiceNumber:        d.InvoiceNumber,
		ClientName:           d.ClientName,
		ClientEmail:          nullString(d.ClientEmail),
		Status:               string(d.Status),
		IssueDate:            d.IssueDate,
		DueDate:              d.DueDate,
		LineItems:            items,
		Subtotal:             d.Subtotal,
		TaxRate:              d.TaxRate,
		TaxAmount:            d.TaxAmount,
		DiscountAmount:       d.DiscountAmount,
		TotalAmount:          d.TotalAmount,
		AmountPaid:           d.AmountPaid,
		BalanceDue:           d.BalanceDue,
		Notes:                d.Notes,
		PaymentLink:          nullString(d.PaymentLink),
		PaymentLinkExpiresAt: d.PaymentLinkExpiresAt,
		SentAt:               d.SentAt,
		PaidAt:               d.PaidAt,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	items := make([]domain.LineItem, len(m.LineItems))
	for i, li := range m.LineItems {
		items[i] = domain.LineItem{Description: li.Description, Quantity: li.Quantity, Rate: li.Rate, Amount: li.Amount}
	}
	return domain.Invoice{
		InvoiceID:            m.InvoiceID,
		InvoiceNumber:        m.InvoiceNumber,
		ClientName:           m.ClientName,
		ClientEmail:          m.ClientEmail.String,
		Status:               domain.InvoiceStatus(m.Status),
		IssueDate:            m.IssueDate,
		DueDate:              m.DueDate,
		LineItems:            items,
		Subtotal:             m.Subtotal,
		TaxRate:              m.TaxRate,
		TaxAmount:            m.TaxAmount,
		DiscountAmount:       m.DiscountAmount,
		TotalAmount:          m.TotalAmount,
		AmountPaid:           m.AmountPaid,
		BalanceDue:           m.BalanceDue,
		Notes:                m.Notes,
		PaymentLink:          m.PaymentLink.String,
		PaymentLinkExpiresAt: m.PaymentLinkExpiresAt,
		SentAt:               m.SentAt,
		PaidAt:               m.PaidAt,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to a slice of domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		InvoiceID:   d.InvoiceID,
		Amount:      d.Amount,
		PaymentDate: d.PaymentDate,
		Method:      d.Method,
		Reference:   d.Reference,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}
