package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/sleeklegal-backend/errs"
)

func TestNewMailerRequiresKeys(t *testing.T) {
	_, err := NewMailer(map[string]string{"RESEND_FROM_EMAIL": "site@example.com"})
	assert.ErrorIs(t, err, errs.ErrEnvironmentVariable)

	_, err = NewMailer(map[string]string{"RESEND_API_KEY": "key"})
	assert.ErrorIs(t, err, errs.ErrEnvironmentVariable)
}

func TestMailerSendEmail(t *testing.T) {
	var got ResendEmailRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(ResendEmailResponse{ID: "email_1"})
	}))
	defer srv.Close()

	m, err := NewMailer(map[string]string{
		"RESEND_API_KEY":    "key",
		"RESEND_FROM_EMAIL": "SleekLegal <site@example.com>",
		"RESEND_ENDPOINT":   srv.URL,
	})
	require.NoError(t, err)

	err = m.SendEmail(context.Background(), Email{
		Subject:    "Hello",
		HTML:       "<p>hi</p>",
		Recipients: []string{"inbox@example.com"},
		ReplyTo:    "client@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer key", auth)
	assert.Equal(t, "SleekLegal <site@example.com>", got.From)
	assert.Equal(t, []string{"inbox@example.com"}, got.To)
	assert.Equal(t, "client@example.com", got.ReplyTo)
}

func TestMailerSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(ResendErrorResponse{Message: "invalid from"})
	}))
	defer srv.Close()

	m, err := NewMailer(map[string]string{
		"RESEND_API_KEY":    "key",
		"RESEND_FROM_EMAIL": "site@example.com",
		"RESEND_ENDPOINT":   srv.URL,
	})
	require.NoError(t, err)

	err = m.SendEmail(context.Background(), Email{Subject: "x", Recipients: []string{"a@example.com"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrServiceUnavailable)

	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.GetFullError(), "invalid from")
}

func TestMailerRequiresRecipients(t *testing.T) {
	m := &Mailer{apiKey: "k", from: "f", endpoint: "http://unused", client: http.DefaultClient}
	err := m.SendEmail(context.Background(), Email{Subject: "x"})
	assert.True(t, errs.IsMissingRequiredFieldError(err))
}
