package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"clinicdesk/config"
)

type SendGridSender struct {
	client   *sendgrid.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewSendGridSender(cfg config.NotifyConfig, logger *zap.Logger) *SendGridSender {
	return &SendGridSender{
		client:   sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:     cfg.SendGridFrom,
		fromName: cfg.SendGridFromName,
		logger:   logger,
	}
}

func (s *SendGridSender) SendEmail(ctx context.Context, toEmail, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		s.logger.Error("sendgrid rejected message",
			zap.Int("status", resp.StatusCode),
			zap.String("body", resp.Body))
		return fmt.Errorf("sendgrid send: status %d", resp.StatusCode)
	}

	return nil
}
