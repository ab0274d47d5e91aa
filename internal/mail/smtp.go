package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/google/uuid"
)

type SMTPConfig struct {
	Host     string // e.g. smtp.gmail.com
	Port     int    // 587 submission
	Username string
	Password string // app password for Gmail accounts with 2FA
	From     string
}

// SMTPMailer submits through an authenticated SMTP relay. With Gmail the
// username plus an app password from the environment is enough.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port <= 0 {
		cfg.Port = 587
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}

	return &SMTPMailer{cfg: cfg}
}

// IsConfigured reports whether credentials are present. Sends fail with
// ErrNotConfigured until they are.
func (m *SMTPMailer) IsConfigured() bool {
	return m.cfg.Username != "" && m.cfg.Password != ""
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) (string, error) {
	if !m.IsConfigured() {
		return "", ErrNotConfigured
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), m.cfg.Host)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "Message-ID: %s\r\n", messageID)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTMLBody)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	// smtp.SendMail has no context hook, so run it on the side and race the
	// context. A cancelled send still runs to completion in the background.
	done := make(chan error, 1)

	go func() {
		done <- smtp.SendMail(addr, auth, m.cfg.From, []string{msg.To}, []byte(b.String()))
	}()

	select {
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("smtp send: %w", err)
		}
		return messageID, nil

	case <-ctx.Done():
		return "", ctx.Err()
	}
}
