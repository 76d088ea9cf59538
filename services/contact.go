package services

import (
	"context"
	"fmt"
	"html"
	"net/mail"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/sleeklegal-backend/errs"
)

// Inquiry is a message sent through the site's contact form
type Inquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

func (i Inquiry) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if strings.TrimSpace(i.Email) == "" {
		return errs.NewMissingRequiredFieldError("email")
	}
	if _, err := mail.ParseAddress(i.Email); err != nil {
		return errs.NewInvalidFieldError("email", "not a valid address")
	}
	if strings.TrimSpace(i.Message) == "" {
		return errs.NewMissingRequiredFieldError("message")
	}
	return nil
}

// ContactService forwards inquiries to the firm's inbox and, when an
// alert number is configured, pings it by SMS.
type ContactService struct {
	email   EmailSender
	sms     TextSender
	inbox   []string
	alertTo string
}

// NewContactService returns a service delivering to inbox. sms may be nil.
func NewContactService(email EmailSender, sms TextSender, inbox []string, alertTo string) *ContactService {
	return &ContactService{email: email, sms: sms, inbox: inbox, alertTo: alertTo}
}

// Configured reports whether inquiries can be delivered
func (c *ContactService) Configured() bool {
	return c != nil && c.email != nil && len(c.inbox) > 0
}

// Submit validates and delivers the inquiry. Email failure fails the
// submission; SMS failure is only logged.
func (c *ContactService) Submit(ctx context.Context, inquiry Inquiry) error {
	if err := inquiry.Validate(); err != nil {
		return err
	}
	if !c.Configured() {
		return errs.NewConfigMissingError("contact inbox")
	}

	subject := fmt.Sprintf("New inquiry from %s", inquiry.Name)
	if inquiry.Service != "" {
		subject = fmt.Sprintf("New %s inquiry from %s", inquiry.Service, inquiry.Name)
	}

	err := c.email.SendEmail(ctx, Email{
		Subject:    subject,
		HTML:       inquiryHTML(inquiry),
		Recipients: c.inbox,
		ReplyTo:    inquiry.Email,
	})
	if err != nil {
		return err
	}

	if c.sms != nil && c.alertTo != "" {
		if err := c.sms.SendText(ctx, c.alertTo, subject); err != nil {
			log.Warn().Err(err).Msg("Inquiry emailed but SMS alert failed")
		}
	}
	return nil
}

func inquiryHTML(i Inquiry) string {
	var b strings.Builder
	b.WriteString("<h2>New website inquiry</h2>")
	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "<p><strong>%s:</strong> %s</p>", label, html.EscapeString(value))
	}
	row("Name", i.Name)
	row("Email", i.Email)
	row("Phone", i.Phone)
	row("Service", i.Service)
	fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(html.EscapeString(i.Message), "\n", "<br>"))
	return b.String()
}
