package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/rpupo63/sleeklegal-backend/errs"
)

type fakeEmail struct {
	sent []Email
	err  error
}

func (f *fakeEmail) SendEmail(ctx context.Context, email Email) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, email)
	return nil
}

type fakeText struct {
	to, body []string
	err      error
}

func (f *fakeText) SendText(ctx context.Context, to, body string) error {
	f.to = append(f.to, to)
	f.body = append(f.body, body)
	return f.err
}

func validInquiry() Inquiry {
	return Inquiry{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "555-0100",
		Service: "Family Law",
		Message: "I need help <urgently>\nThanks",
	}
}

func TestInquiryValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Inquiry)
		check  func(error) bool
	}{
		{"missing name", func(i *Inquiry) { i.Name = " " }, errs.IsMissingRequiredFieldError},
		{"missing email", func(i *Inquiry) { i.Email = "" }, errs.IsMissingRequiredFieldError},
		{"bad email", func(i *Inquiry) { i.Email = "not-an-address" }, errs.IsInvalidFieldError},
		{"missing message", func(i *Inquiry) { i.Message = "" }, errs.IsMissingRequiredFieldError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inq := validInquiry()
			tt.mutate(&inq)
			assert.True(t, tt.check(inq.Validate()))
		})
	}
	assert.NoError(t, validInquiry().Validate())
}

func TestContactSubmit(t *testing.T) {
	mail := &fakeEmail{}
	text := &fakeText{}
	svc := NewContactService(mail, text, []string{"inbox@example.com"}, "+15550100")

	require.NoError(t, svc.Submit(context.Background(), validInquiry()))

	require.Len(t, mail.sent, 1)
	sent := mail.sent[0]
	assert.Equal(t, "New Family Law inquiry from Jane Doe", sent.Subject)
	assert.Equal(t, "jane@example.com", sent.ReplyTo)
	assert.Contains(t, sent.HTML, "&lt;urgently&gt;<br>Thanks")
	assert.Equal(t, []string{"+15550100"}, text.to)
}

func TestContactSubmitSMSFailureIsNotFatal(t *testing.T) {
	text := &fakeText{err: errors.New("twilio down")}
	svc := NewContactService(&fakeEmail{}, text, []string{"inbox@example.com"}, "+15550100")
	assert.NoError(t, svc.Submit(context.Background(), validInquiry()))
}

func TestContactSubmitEmailFailure(t *testing.T) {
	mail := &fakeEmail{err: errs.NewServiceUnavailableError("resend", errors.New("500"))}
	text := &fakeText{}
	svc := NewContactService(mail, text, []string{"inbox@example.com"}, "+15550100")

	err := svc.Submit(context.Background(), validInquiry())
	assert.ErrorIs(t, err, errs.ErrServiceUnavailable)
	assert.Empty(t, text.to)
}

func TestContactSubmitUnconfigured(t *testing.T) {
	svc := NewContactService(nil, nil, nil, "")
	err := svc.Submit(context.Background(), validInquiry())
	assert.True(t, errs.IsConfigMissing(err))

	// validation runs first
	err = svc.Submit(context.Background(), Inquiry{})
	assert.True(t, errs.IsValidationError(err))
}

type fakeMessages struct {
	params *twilioApi.CreateMessageParams
	err    error
}

func (f *fakeMessages) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestSMSSendText(t *testing.T) {
	api := &fakeMessages{}
	sms := NewSMSWithClient(api, "+15550000")

	require.NoError(t, sms.SendText(context.Background(), "+15550100", "hello"))
	require.NotNil(t, api.params)
	assert.Equal(t, "+15550100", *api.params.To)
	assert.Equal(t, "+15550000", *api.params.From)
	assert.Equal(t, "hello", *api.params.Body)

	api.err = errors.New("rejected")
	assert.ErrorIs(t, sms.SendText(context.Background(), "+15550100", "hello"), errs.ErrServiceUnavailable)
}

func TestNewSMSRequiresCredentials(t *testing.T) {
	_, err := NewSMS(map[string]string{"TWILIO_ACCOUNT_SID": "AC1"})
	assert.ErrorIs(t, err, errs.ErrEnvironmentVariable)
}
