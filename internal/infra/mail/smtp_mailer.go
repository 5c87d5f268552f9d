// Package mail provides outbound email senders for match notifications and
// pickup codes.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"foodbridge/config"
	"foodbridge/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpMailer sends mail through a plain SMTP relay.
type smtpMailer struct {
	addr   string
	auth   smtp.Auth
	from   string
	logger *slog.Logger
}

// logMailer is the fallback sender used when no SMTP relay is configured.
// It logs the message instead of sending it, which keeps local development
// and tests working without a mail account.
type logMailer struct {
	logger *slog.Logger
}

// NewMailService builds the mail sender from configuration. A nil mail
// config selects the logging fallback.
func NewMailService(cfg *config.Config, logger *slog.Logger) service.MailService {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		logger.Warn("No SMTP relay configured; outbound mail will only be logged")

		return &logMailer{logger: logger}
	}

	var auth smtp.Auth
	if cfg.Mail.Username != "" {
		auth = smtp.PlainAuth("", cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.Host)
	}

	return &smtpMailer{
		addr:   fmt.Sprintf("%s:%d", cfg.Mail.Host, cfg.Mail.Port),
		auth:   auth,
		from:   cfg.Mail.From,
		logger: logger,
	}
}

// Send delivers one message to all recipients through the relay. The context
// is honored before dialing; net/smtp itself does not take a context.
func (m *smtpMailer) Send(ctx context.Context, to []string, subject, body string) error {
	if len(to) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "mail send cancelled")
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.from, strings.Join(to, ", "), subject, body))

	if err := smtp.SendMail(m.addr, m.auth, m.from, to, msg); err != nil {
		return errors.Wrapf(err, "failed to send mail to %d recipients", len(to))
	}

	return nil
}

func (m *logMailer) Send(_ context.Context, to []string, subject, _ string) error {
	m.logger.Info("Mail suppressed (no relay configured)", "to", to, "subject", subject)

	return nil
}
