package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
	"github.com/SscSPs/gigster_garage_backend/internal/utils"
)

// NotificationSettings carries the sender identities used for outbound mail.
type NotificationSettings struct {
	BusinessName         string
	BillingFromAddress   string
	ProposalsFromAddress string
	LegalFromAddress     string
	OwnerFallbackEmail   string
}

// notificationDispatcher renders notices and hands them to the mailer.
// Each notice is one attempt; failures come back as DeliveryResult values.
type notificationDispatcher struct {
	BaseService
	mailer   portssvc.Mailer
	settings NotificationSettings
}

// NewNotificationDispatcher creates the dispatcher for every lifecycle notice.
func NewNotificationDispatcher(mailer portssvc.Mailer, settings NotificationSettings) portssvc.NotificationDispatcherSvc {
	return &notificationDispatcher{
		mailer:   mailer,
		settings: settings,
	}
}

var _ portssvc.NotificationDispatcherSvc = (*notificationDispatcher)(nil)

func (d *notificationDispatcher) SendOverdueNotice(ctx context.Context, invoice domain.Invoice, now time.Time) domain.DeliveryResult {
	logAttrs := []any{
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
	}
	if invoice.ClientEmail == "" {
		d.LogInfo(ctx, "No client email on file, skipping overdue notice", logAttrs...)
		return domain.NotDelivered(domain.DeliveryNoRecipient, nil)
	}

	data := overdueNoticeData{
		BusinessName:  d.settings.BusinessName,
		ClientName:    invoice.ClientName,
		InvoiceNumber: invoice.InvoiceNumber,
		AmountDue:     utils.FormatMoney(invoice.AmountDue(), ""),
		PaymentLink:   invoice.PaymentLink,
	}
	if invoice.DueDate != nil {
		data.DueDate = domain.CalendarDate(*invoice.DueDate).Format(emailDateLayout)
		data.DaysOverdue = domain.DaysOverdue(*invoice.DueDate, now)
	}

	return d.deliver(ctx, overdueNoticeTemplate, data, domain.EmailMessage{
		To:      invoice.ClientEmail,
		From:    d.settings.BillingFromAddress,
		Subject: fmt.Sprintf("Payment Overdue: Invoice %s", invoice.InvoiceNumber),
	}, logAttrs...)
}

func (d *notificationDispatcher) NotifyProposalResponse(ctx context.Context, proposal domain.Proposal, response domain.ProposalResponse, ownerEmail string) domain.DeliveryResult {
	to := d.ownerAddress(ownerEmail)
	logAttrs := []any{
		slog.String("proposal_id", proposal.ProposalID),
		slog.String("response", string(response)),
	}
	if to == "" {
		d.LogWarn(ctx, nil, "No owner address for proposal response notice", logAttrs...)
		return domain.NotDelivered(domain.DeliveryNoRecipient, nil)
	}

	data := proposalResponseData{
		Title:       proposal.Title,
		ClientName:  proposal.ClientName,
		ClientEmail: proposal.ClientEmail,
		Response:    response.DisplayName(),
		Message:     proposal.ResponseMessage,
		Version:     proposal.Version,
	}
	if proposal.RespondedAt != nil {
		data.RespondedAt = proposal.RespondedAt.Format(time.RFC1123)
	}

	return d.deliver(ctx, proposalResponseTemplate, data, domain.EmailMessage{
		To:      to,
		From:    d.settings.ProposalsFromAddress,
		Subject: fmt.Sprintf("Proposal Response: %s - %s", response.DisplayName(), proposal.Title),
	}, logAttrs...)
}

func (d *notificationDispatcher) SendContractExpirationNotice(ctx context.Context, contract domain.Contract, ownerEmail string, now time.Time) domain.DeliveryResult {
	to := d.ownerAddress(ownerEmail)
	logAttrs := []any{slog.String("contract_id", contract.ContractID)}
	if to == "" {
		d.LogWarn(ctx, nil, "No owner address for contract expiration notice", logAttrs...)
		return domain.NotDelivered(domain.DeliveryNoRecipient, nil)
	}

	data := contractNoticeFromContract(contract)
	data.DaysUntil = contract.DaysUntil(now)

	return d.deliver(ctx, contractExpirationTemplate, data, domain.EmailMessage{
		To:      to,
		From:    d.settings.LegalFromAddress,
		Subject: fmt.Sprintf("Contract Expiring Soon: %s", contract.Title),
	}, logAttrs...)
}

func (d *notificationDispatcher) SendContractRenewalNotice(ctx context.Context, contract domain.Contract, ownerEmail string) domain.DeliveryResult {
	to := d.ownerAddress(ownerEmail)
	logAttrs := []any{slog.String("contract_id", contract.ContractID)}
	if to == "" {
		d.LogWarn(ctx, nil, "No owner address for contract renewal notice", logAttrs...)
		return domain.NotDelivered(domain.DeliveryNoRecipient, nil)
	}

	return d.deliver(ctx, contractRenewalTemplate, contractNoticeFromContract(contract), domain.EmailMessage{
		To:      to,
		From:    d.settings.LegalFromAddress,
		Subject: fmt.Sprintf("Contract Auto-Renewed: %s", contract.Title),
	}, logAttrs...)
}

func (d *notificationDispatcher) ownerAddress(ownerEmail string) string {
	if ownerEmail != "" {
		return ownerEmail
	}
	return d.settings.OwnerFallbackEmail
}

// deliver renders tmpl into msg and makes a single send attempt.
func (d *notificationDispatcher) deliver(ctx context.Context, tmpl emailTemplate, data any, msg domain.EmailMessage, logAttrs ...any) domain.DeliveryResult {
	text, html, err := tmpl.render(data)
	if err != nil {
		d.LogError(ctx, err, "Failed to render notification", logAttrs...)
		return domain.NotDelivered(domain.DeliveryRenderFailed, err)
	}
	msg.TextBody = text
	msg.HTMLBody = html

	if err := d.mailer.Send(ctx, msg); err != nil {
		d.LogWarn(ctx, err, "Failed to send notification", append(logAttrs, slog.String("to", msg.To))...)
		return domain.NotDelivered(domain.DeliveryTransportFailed, err)
	}
	d.LogInfo(ctx, "Notification sent", append(logAttrs, slog.String("to", msg.To), slog.String("subject", msg.Subject))...)
	return domain.DeliverySucceeded()
}

func contractNoticeFromContract(c domain.Contract) contractNoticeData {
	data := contractNoticeData{
		Title:          c.Title,
		ContractNumber: c.ContractNumber,
		ClientName:     c.ClientName,
		AutoRenewal:    c.AutoRenewal,
	}
	if c.ExpirationDate != nil {
		data.ExpirationDate = domain.CalendarDate(*c.ExpirationDate).Format(emailDateLayout)
	}
	return data
}
