package mail

import (
	"context"
	"fmt"
	"os"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailMailer sends mail through the Gmail API using a service account with
// domain-wide delegation, impersonating sender.
type GmailMailer struct {
	svc    *gmail.Service
	sender string
}

// NewGmailMailer loads service account credentials from credentialsFile.
func NewGmailMailer(ctx context.Context, credentialsFile, sender string) (*GmailMailer, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read gmail credentials: %w", err)
	}
	conf, err := google.JWTConfigFromJSON(data, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gmail credentials: %w", err)
	}
	conf.Subject = sender

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &GmailMailer{svc: svc, sender: sender}, nil
}

func (m *GmailMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	if err := validate(msg); err != nil {
		return err
	}
	raw, err := encodeRaw(msg)
	if err != nil {
		return err
	}
	if _, err := m.svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gmail send to %s failed: %w", msg.To, err)
	}
	return nil
}
