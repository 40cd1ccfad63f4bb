package mail

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"gopkg.in/gomail.v2"
)

// buildMessage converts a transport-neutral email to a MIME message. A text body
// is always present; HTML is attached as an alternative when provided.
func buildMessage(msg domain.EmailMessage) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}
	return m
}

// encodeRaw renders msg as RFC 2822 bytes in base64url, the form the Gmail API expects.
func encodeRaw(msg domain.EmailMessage) (string, error) {
	var buf bytes.Buffer
	if _, err := buildMessage(msg).WriteTo(&buf); err != nil {
		return "", fmt.Errorf("failed to render email: %w", err)
	}
	return base64.URLEncoding.EncodeToString(buf.Bytes()), nil
}

func validate(msg domain.EmailMessage) error {
	if msg.To == "" {
		return fmt.Errorf("email has no recipient")
	}
	if msg.From == "" {
		return fmt.Errorf("email has no sender")
	}
	return nil
}
