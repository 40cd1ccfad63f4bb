package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MAIL_DRIVER", "")
	t.Setenv("INVOICE_SWEEP_INTERVAL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.InvoiceSweepInterval)
	assert.Equal(t, 24*time.Hour, cfg.ContractSweepInterval)
	assert.Equal(t, 30, cfg.ProposalDefaultExpiryDays)
	assert.Equal(t, MailDriverLog, cfg.MailDriver)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("INVOICE_SWEEP_INTERVAL", "15m")
	t.Setenv("MAIL_DRIVER", "SMTP")
	t.Setenv("SMTP_HOST", "smtp.example.test")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test ,")
	t.Setenv("PAYMENT_LINK_BASE_URL", "https://pay.example.test/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.InvoiceSweepInterval)
	assert.Equal(t, MailDriverSMTP, cfg.MailDriver)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "https://pay.example.test", cfg.PaymentLinkBaseURL)
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("CONTRACT_SWEEP_INTERVAL", "daily")
	t.Setenv("MAIL_DRIVER", "pigeon")
	t.Setenv("PROPOSAL_DEFAULT_EXPIRY_DAYS", "-4")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.ContractSweepInterval)
	assert.Equal(t, MailDriverLog, cfg.MailDriver)
	assert.Equal(t, 30, cfg.ProposalDefaultExpiryDays)
}
