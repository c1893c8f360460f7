package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"
)

type mailgunClient struct {
	client *mailgun.MailgunImpl
	from   string
}

// NewMailgunClient creates a Mailgun-backed email sender.
func NewMailgunClient(cfg Config) (EmailSender, error) {
	if cfg.MailgunDomain == "" {
		return nil, fmt.Errorf("%w: MailgunDomain is required", ErrInvalidConfig)
	}
	if cfg.MailgunAPIKey == "" {
		return nil, fmt.Errorf("%w: MailgunAPIKey is required", ErrInvalidConfig)
	}
	if err := validateSender(cfg); err != nil {
		return nil, err
	}

	return &mailgunClient{
		client: mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
		from:   cfg.SenderEmail,
	}, nil
}

func (c *mailgunClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	// Mailgun requires a text part; the HTML body carries the content.
	message := c.client.NewMessage(c.from, params.Subject, params.Subject, params.SendTo)
	message.SetHtml(params.BodyHTML)
	if params.ReplyTo != "" {
		message.AddHeader("Reply-To", params.ReplyTo)
	}

	if _, _, err := c.client.Send(ctx, message); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}
