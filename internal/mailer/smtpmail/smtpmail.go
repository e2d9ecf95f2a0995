package smtpmail

import (
	"context"
	"fmt"
	"net/smtp"

	"webinarBooker/internal/config"
	"webinarBooker/internal/mailer"
)

// Mailer delivers messages over plain SMTP. Auth is optional: when no
// username is configured the message is handed to the relay unauthenticated.
type Mailer struct {
	host     string
	port     int
	from     string
	username string
	password string
}

func New(cfg config.SMTP) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		from:     cfg.From,
		username: cfg.Username,
		password: cfg.Password,
	}
}

func (m *Mailer) Send(_ context.Context, msg mailer.Message) error {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{msg.To}, buildMessage(m.from, msg)); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}

func buildMessage(from string, msg mailer.Message) []byte {
	raw := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		from, msg.To, msg.Subject, msg.Body)

	return []byte(raw)
}
