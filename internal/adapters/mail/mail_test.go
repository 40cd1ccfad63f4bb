package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"
	"testing"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/SscSPs/gigster_garage_backend/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMessage() domain.EmailMessage {
	return domain.EmailMessage{
		To:       "client@example.test",
		From:     "billing@example.test",
		Subject:  "Payment Overdue: Invoice INV-001",
		TextBody: "Your invoice is 4 days overdue.",
		HTMLBody: "<p>Your invoice is <strong>4</strong> days overdue.</p>",
	}
}

func TestBuildMessageHeadersAndParts(t *testing.T) {
	var buf bytes.Buffer
	_, err := buildMessage(sampleMessage()).WriteTo(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "To: client@example.test")
	assert.Contains(t, out, "From: billing@example.test")
	assert.Contains(t, out, "Subject: Payment Overdue: Invoice INV-001")
	assert.Contains(t, out, "text/plain")
	assert.Contains(t, out, "text/html")
}

func TestEncodeRawIsBase64URL(t *testing.T) {
	raw, err := encodeRaw(sampleMessage())
	require.NoError(t, err)

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "Subject: Payment Overdue: Invoice INV-001")
}

func TestLogMailer(t *testing.T) {
	var buf bytes.Buffer
	m := NewLogMailer(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, m.Send(context.Background(), sampleMessage()))
	assert.Contains(t, buf.String(), `"to":"client@example.test"`)

	noRecipient := sampleMessage()
	noRecipient.To = ""
	assert.Error(t, m.Send(context.Background(), noRecipient))
}

func TestSMTPMailerHonoursCancelledContext(t *testing.T) {
	m := NewSMTPMailer("127.0.0.1", 1, "", "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, m.Send(ctx, sampleMessage()), context.Canceled)
}

func TestNewMailerSelectsDriver(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	m, err := NewMailer(context.Background(), &config.Config{MailDriver: config.MailDriverLog}, logger)
	require.NoError(t, err)
	assert.IsType(t, &LogMailer{}, m)

	m, err = NewMailer(context.Background(), &config.Config{MailDriver: config.MailDriverSMTP, SMTPHost: "smtp.test", SMTPPort: 25}, logger)
	require.NoError(t, err)
	assert.IsType(t, &SMTPMailer{}, m)

	_, err = NewMailer(context.Background(), &config.Config{MailDriver: config.MailDriverGmail, GmailCredentialsFile: "/nonexistent/creds.json"}, logger)
	assert.ErrorContains(t, err, "failed to read gmail credentials")

	_, err = NewMailer(context.Background(), &config.Config{MailDriver: "fax"}, logger)
	assert.Error(t, err)
}
