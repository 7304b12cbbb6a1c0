package services

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageCreator is satisfied by the Twilio REST API service.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSSender delivers text messages through Twilio.
type SMSSender struct {
	api        messageCreator
	fromNumber string
}

// NewSMSSender returns nil when any credential is missing, which disables SMS.
func NewSMSSender(accountSID, authToken, fromNumber string) *SMSSender {
	if accountSID == "" || authToken == "" || fromNumber == "" {
		return nil
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &SMSSender{api: client.Api, fromNumber: fromNumber}
}

// SendSMS sends body to every number in recipients and stops at the first failure.
func (s *SMSSender) SendSMS(body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	for _, to := range recipients {
		params := &twilioApi.CreateMessageParams{}
		params.SetTo(to)
		params.SetFrom(s.fromNumber)
		params.SetBody(body)

		resp, err := s.api.CreateMessage(params)
		if err != nil {
			return fmt.Errorf("failed to send SMS to %s: %w", to, err)
		}
		if resp != nil && resp.Sid != nil {
			log.Info().Str("messageSid", *resp.Sid).Msg("Successfully sent SMS via Twilio")
		}
	}
	return nil
}
