package mail

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/gigster_garage_backend/internal/core/ports/services"
	"github.com/SscSPs/gigster_garage_backend/internal/platform/config"
)

// NewMailer selects the mail transport named by cfg.MailDriver.
func NewMailer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portssvc.Mailer, error) {
	switch cfg.MailDriver {
	case config.MailDriverSMTP:
		logger.Info("Using SMTP mailer", slog.String("host", cfg.SMTPHost), slog.Int("port", cfg.SMTPPort))
		return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword), nil
	case config.MailDriverGmail:
		logger.Info("Using Gmail API mailer", slog.String("sender", cfg.GmailSender))
		m, err := NewGmailMailer(ctx, cfg.GmailCredentialsFile, cfg.GmailSender)
		if err != nil {
			return nil, err
		}
		return m, nil
	case config.MailDriverLog, "":
		logger.Info("Using log mailer; emails will not be delivered")
		return NewLogMailer(logger), nil
	}
	return nil, fmt.Errorf("unknown mail driver %q", cfg.MailDriver)
}

var (
	_ portssvc.Mailer = (*SMTPMailer)(nil)
	_ portssvc.Mailer = (*GmailMailer)(nil)
	_ portssvc.Mailer = (*LogMailer)(nil)
)
