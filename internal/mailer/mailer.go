package mailer

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/nkulisa-npc/membership-site/internal/config"
)

// ErrNotConfigured is returned when mail credentials are absent.
var ErrNotConfigured = errors.New("mailer: mail credentials not configured")

// Message is a plain-text outbound email.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Mailer sends a message through the outbound relay. A single attempt is
// made per call; delivery is best effort and failures carry the relay's
// reason.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// SMTP sends mail through an SMTP relay using the configured account.
type SMTP struct {
	cfg config.MailConfig
}

func NewSMTP(cfg config.MailConfig) *SMTP {
	return &SMTP{cfg: cfg}
}

// Send dials the relay and sends msg. One attempt, no retry.
func (s *SMTP) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.cfg.Enabled() {
		return ErrNotConfigured
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Username)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

var _ Mailer = (*SMTP)(nil)
