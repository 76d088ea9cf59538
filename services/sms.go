package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/rpupo63/sleeklegal-backend/config"
	"github.com/rpupo63/sleeklegal-backend/errs"
)

// TextSender delivers a short text message
type TextSender interface {
	SendText(ctx context.Context, to, body string) error
}

// MessageCreator is the part of the Twilio REST client used here
type MessageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMS sends text messages through Twilio
type SMS struct {
	api  MessageCreator
	from string
}

// NewSMS reads TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_FROM_NUMBER
func NewSMS(cfg map[string]string) (*SMS, error) {
	sid := config.GetString(cfg, "TWILIO_ACCOUNT_SID", "")
	if sid == "" {
		return nil, errs.NewEnvironmentVariableError("TWILIO_ACCOUNT_SID")
	}
	token := config.GetString(cfg, "TWILIO_AUTH_TOKEN", "")
	if token == "" {
		return nil, errs.NewEnvironmentVariableError("TWILIO_AUTH_TOKEN")
	}
	from := config.GetString(cfg, "TWILIO_FROM_NUMBER", "")
	if from == "" {
		return nil, errs.NewEnvironmentVariableError("TWILIO_FROM_NUMBER")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: sid,
		Password: token,
	})
	return NewSMSWithClient(client.Api, from), nil
}

func NewSMSWithClient(api MessageCreator, from string) *SMS {
	return &SMS{api: api, from: from}
}

// SendText sends body to the given number. The Twilio client has no
// context support, so ctx is only checked before the call.
func (s *SMS) SendText(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if to == "" {
		return errs.NewMissingRequiredFieldError("to")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return errs.NewServiceUnavailableError("twilio", err)
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	log.Info().Str("messageSid", sid).Msg("Successfully sent SMS via Twilio")
	return nil
}
