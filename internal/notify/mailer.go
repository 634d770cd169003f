package notify

import (
	"context"

	"golang.org/x/exp/slog"
)

// Mailer delivers account notifications. Delivery failure must never fail the
// operation that triggered it; callers log and move on.
type Mailer interface {
	SendWelcome(ctx context.Context, email, name string) error
	SendPasswordReset(ctx context.Context, email, name, resetURL string) error
}

// LogMailer is the stand-in delivery backend: it writes the message to the
// log instead of sending it. Useful for local and test environments.
type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log.With("component", "mailer")}
}

func (m *LogMailer) SendWelcome(_ context.Context, email, name string) error {
	m.log.Info("welcome mail", "to", email, "name", name)
	return nil
}

func (m *LogMailer) SendPasswordReset(_ context.Context, email, name, resetURL string) error {
	m.log.Info("password reset mail", "to", email, "name", name, "url", resetURL)
	return nil
}
