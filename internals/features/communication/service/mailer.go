package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"schooloffice_backend/internals/configs"
)

// Mailer delivers one plain-text email.
type Mailer interface {
	Send(ctx context.Context, toName, toEmail, subject, body string) error
}

type SendGridMailer struct {
	key  string
	from *sgmail.Email
}

// NewMailer returns nil when no SendGrid key is configured.
func NewMailer(cfg configs.SendGridConfig) Mailer {
	if cfg.APIKey == "" {
		return nil
	}
	return &SendGridMailer{key: cfg.APIKey, from: sgmail.NewEmail(cfg.FromName, cfg.FromEmail)}
}

func (m *SendGridMailer) Send(ctx context.Context, toName, toEmail, subject, body string) error {
	msg := sgmail.NewSingleEmail(m.from, subject, sgmail.NewEmail(toName, toEmail), body, "")
	client := sendgrid.NewSendClient(m.key)
	res, err := client.SendWithContext(ctx, msg)
	if err != nil {
		return err
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}
