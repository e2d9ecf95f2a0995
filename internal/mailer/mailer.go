package mailer

import (
	"context"
	"log/slog"
)

// Message is one notification to a single recipient.
type Message struct {
	To      string
	Subject string
	Body    string
}

// LogMailer writes messages to the log instead of delivering them. Used when
// no delivery driver is configured, e.g. in local development.
type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.log.Info("would send mail",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)

	return nil
}
