package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/sleeklegal-backend/config"
	"github.com/rpupo63/sleeklegal-backend/errs"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// Email is one outgoing message
type Email struct {
	Subject    string
	HTML       string
	Recipients []string
	ReplyTo    string
}

// EmailSender delivers an Email
type EmailSender interface {
	SendEmail(ctx context.Context, email Email) error
}

// Mailer sends email through the Resend API
type Mailer struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

// NewMailer reads RESEND_API_KEY and RESEND_FROM_EMAIL. Both are required.
func NewMailer(cfg map[string]string) (*Mailer, error) {
	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	if apiKey == "" {
		return nil, errs.NewEnvironmentVariableError("RESEND_API_KEY")
	}
	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
	if fromEmail == "" {
		return nil, errs.NewEnvironmentVariableError("RESEND_FROM_EMAIL")
	}

	return &Mailer{
		apiKey:   apiKey,
		from:     fromEmail,
		endpoint: config.GetString(cfg, "RESEND_ENDPOINT", resendEndpoint),
		client:   &http.Client{Timeout: config.GetDuration(cfg, "RESEND_TIMEOUT_SECONDS", 10*time.Second)},
	}, nil
}

// SendEmail sends an email using the Resend API
func (m *Mailer) SendEmail(ctx context.Context, email Email) error {
	if len(email.Recipients) == 0 {
		return errs.NewMissingRequiredFieldError("recipients")
	}

	payload := ResendEmailRequest{
		From:    m.from,
		To:      email.Recipients,
		Subject: email.Subject,
		Html:    email.HTML,
		ReplyTo: email.ReplyTo,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return errs.NewServiceUnavailableError("resend", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return errs.NewServiceUnavailableError("resend", fmt.Errorf("status %d: %s", resp.StatusCode, errorResp.Message))
		}
		return errs.NewServiceUnavailableError("resend", fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes)))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}

	return nil
}
