package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"clinicdesk/config"
)

type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(cfg config.NotifyConfig) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})

	return &TwilioSender{
		client: client,
		from:   cfg.TwilioFromPhone,
	}
}

func (s *TwilioSender) SendSMS(ctx context.Context, toPhone, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(toPhone)
	params.SetFrom(s.from)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}

	return nil
}
