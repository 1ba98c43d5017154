package notify

import (
	"context"
)

// EmailSender delivers a plain-text email to a single recipient.
type EmailSender interface {
	SendEmail(ctx context.Context, toEmail, toName, subject, body string) error
}

// SMSSender delivers a short text message to a phone number in E.164 form.
type SMSSender interface {
	SendSMS(ctx context.Context, toPhone, body string) error
}

// NoopSender satisfies both sender interfaces and silently drops
// messages. Used in demo mode and when provider credentials are absent.
type NoopSender struct{}

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (NoopSender) SendEmail(ctx context.Context, toEmail, toName, subject, body string) error {
	return nil
}

func (NoopSender) SendSMS(ctx context.Context, toPhone, body string) error {
	return nil
}
