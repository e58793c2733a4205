package notifier

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// MailConfig holds the transactional mail settings. All three values are
// required for the notification endpoint to accept requests.
type MailConfig struct {
	APIKey    string
	FromEmail string
	ToEmail   string
}

// Complete reports whether every required mail setting is present.
func (c MailConfig) Complete() bool {
	return c.APIKey != "" && c.FromEmail != "" && c.ToEmail != ""
}

// Mail is a single outbound plain-text email.
type Mail struct {
	From    string
	To      string
	Subject string
	Text    string
}

// Mailer sends transactional email.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

// ResendMailer sends mail through the Resend API.
type ResendMailer struct {
	client *resend.Client
}

// NewResendMailer creates a mailer backed by Resend.
func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
	}
}

// Send delivers a single email. One attempt, no retry.
func (m *ResendMailer) Send(ctx context.Context, mail Mail) error {
	params := &resend.SendEmailRequest{
		From:    mail.From,
		To:      []string{mail.To},
		Subject: mail.Subject,
		Text:    mail.Text,
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
