package services

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

const emailDateLayout = "January 2, 2006"

// emailTemplate pairs the plain text and HTML renderings of one message.
type emailTemplate struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

func newEmailTemplate(name, text, html string) emailTemplate {
	return emailTemplate{
		text: texttemplate.Must(texttemplate.New(name + ".txt").Parse(text)),
		html: htmltemplate.Must(htmltemplate.New(name + ".html").Parse(html)),
	}
}

func (t emailTemplate) render(data any) (string, string, error) {
	var textBuf, htmlBuf bytes.Buffer
	if err := t.text.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("render %s: %w", t.text.Name(), err)
	}
	if err := t.html.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("render %s: %w", t.html.Name(), err)
	}
	return textBuf.String(), htmlBuf.String(), nil
}

type overdueNoticeData struct {
	BusinessName  string
	ClientName    string
	InvoiceNumber string
	AmountDue     string
	DueDate       string
	DaysOverdue   int
	PaymentLink   string
}

var overdueNoticeTemplate = newEmailTemplate("overdue_notice",
	`Dear {{.ClientName}},

This is a reminder that invoice {{.InvoiceNumber}} for {{.AmountDue}} was due on {{.DueDate}} and is now {{.DaysOverdue}} day(s) overdue.
{{if .PaymentLink}}
You can pay online at: {{.PaymentLink}}
{{end}}
Please arrange payment at your earliest convenience. If you have already paid, please disregard this message.

Thank you,
{{.BusinessName}}
`,
	`<div style="font-family: Arial, sans-serif; max-width: 600px;">
  <h2 style="color: #b91c1c;">Payment Overdue</h2>
  <p>Dear {{.ClientName}},</p>
  <p>This is a reminder that invoice <strong>{{.InvoiceNumber}}</strong> for <strong>{{.AmountDue}}</strong>
  was due on {{.DueDate}} and is now <strong>{{.DaysOverdue}} day(s) overdue</strong>.</p>
  {{if .PaymentLink}}<p><a href="{{.PaymentLink}}">Pay this invoice online</a></p>{{end}}
  <p>Please arrange payment at your earliest convenience. If you have already paid, please disregard this message.</p>
  <p>Thank you,<br>{{.BusinessName}}</p>
</div>
`)

type proposalResponseData struct {
	Title       string
	ClientName  string
	ClientEmail string
	Response    string
	Message     string
	RespondedAt string
	Version     int
}

var proposalResponseTemplate = newEmailTemplate("proposal_response",
	`{{.ClientName}}{{if .ClientEmail}} ({{.ClientEmail}}){{end}} responded to "{{.Title}}" (version {{.Version}}).

Response: {{.Response}}
Responded at: {{.RespondedAt}}
{{if .Message}}
Message from the client:
{{.Message}}
{{end}}`,
	`<div style="font-family: Arial, sans-serif; max-width: 600px;">
  <h2>Proposal {{.Response}}</h2>
  <p><strong>{{.ClientName}}</strong>{{if .ClientEmail}} ({{.ClientEmail}}){{end}} responded to
  <em>{{.Title}}</em> (version {{.Version}}).</p>
  <p>Responded at: {{.RespondedAt}}</p>
  {{if .Message}}<blockquote style="border-left: 3px solid #ccc; padding-left: 8px;">{{.Message}}</blockquote>{{end}}
</div>
`)

type contractNoticeData struct {
	Title          string
	ContractNumber string
	ClientName     string
	ExpirationDate string
	DaysUntil      int
	AutoRenewal    bool
}

var contractExpirationTemplate = newEmailTemplate("contract_expiration",
	`Contract {{.ContractNumber}} "{{.Title}}" with {{.ClientName}} expires on {{.ExpirationDate}} ({{.DaysUntil}} day(s) from now).
{{if .AutoRenewal}}
It is set to renew automatically.
{{else}}
It will not renew automatically. Reach out to the client if you want to extend it.
{{end}}`,
	`<div style="font-family: Arial, sans-serif; max-width: 600px;">
  <h2>Contract Expiring Soon</h2>
  <p>Contract <strong>{{.ContractNumber}}</strong> "{{.Title}}" with {{.ClientName}} expires on
  <strong>{{.ExpirationDate}}</strong> ({{.DaysUntil}} day(s) from now).</p>
  {{if .AutoRenewal}}<p>It is set to renew automatically.</p>{{else}}<p>It will not renew automatically. Reach out to the client if you want to extend it.</p>{{end}}
</div>
`)

var contractRenewalTemplate = newEmailTemplate("contract_renewal",
	`Contract {{.ContractNumber}} "{{.Title}}" with {{.ClientName}} was renewed automatically.

New expiration date: {{.ExpirationDate}}
`,
	`<div style="font-family: Arial, sans-serif; max-width: 600px;">
  <h2>Contract Renewed</h2>
  <p>Contract <strong>{{.ContractNumber}}</strong> "{{.Title}}" with {{.ClientName}} was renewed automatically.</p>
  <p>New expiration date: <strong>{{.ExpirationDate}}</strong></p>
</div>
`)
