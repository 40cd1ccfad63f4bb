package mail

import (
	"context"
	"log/slog"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
)

// LogMailer writes messages to the log instead of delivering them. Used in development.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	if err := validate(msg); err != nil {
		return err
	}
	m.logger.InfoContext(ctx, "Email (log driver)",
		slog.String("to", msg.To),
		slog.String("from", msg.From),
		slog.String("subject", msg.Subject),
		slog.Int("text_bytes", len(msg.TextBody)),
	)
	return nil
}
