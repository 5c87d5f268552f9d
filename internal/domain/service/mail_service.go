package service

import (
	"context"
)

// MailService defines the interface for sending transactional email.
type MailService interface {
	// Send delivers a plain text message to the given recipients.
	Send(ctx context.Context, to []string, subject, body string) error
}
