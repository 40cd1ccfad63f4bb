package mail

import (
	"context"
	"fmt"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends mail through an SMTP relay, one connection per message.
type SMTPMailer struct {
	dialer *gomail.Dialer
}

// NewSMTPMailer creates an SMTP mailer. STARTTLS is negotiated when the server offers it.
func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{dialer: gomail.NewDialer(host, port, username, password)}
}

func (m *SMTPMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validate(msg); err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(buildMessage(msg)); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", msg.To, err)
	}
	return nil
}
