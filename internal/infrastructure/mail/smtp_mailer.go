package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"fudys.backend/internal/config"
	"fudys.backend/internal/domain/ports"
)

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPMailer creates a mailer from SMTP config.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	var auth smtp.Auth
	if cfg.User != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth: auth,
		from: cfg.From,
	}
}

var _ ports.Mailer = (*SMTPMailer)(nil)

// Send delivers one HTML message. The context deadline is not honored by
// net/smtp itself; callers should keep messages small and relays close.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)

	envelopeFrom := m.from
	// "Name <addr>" style sender: the envelope needs the bare address.
	if start := strings.LastIndex(m.from, "<"); start >= 0 {
		if end := strings.LastIndex(m.from, ">"); end > start {
			envelopeFrom = m.from[start+1 : end]
		}
	}

	if err := smtp.SendMail(m.addr, m.auth, envelopeFrom, []string{to}, []byte(b.String())); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
