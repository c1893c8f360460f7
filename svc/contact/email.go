package contact

import (
	"context"
	"fmt"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/landkit/pkg/email"
	"github.com/dmitrymomot/landkit/pkg/email/templates"
	"github.com/dmitrymomot/landkit/pkg/sanitizer"
)

const (
	emailTag           = "contact-form"
	emailSubjectMaxLen = 150
)

var (
	emailPolicyOnce sync.Once
	emailPolicy     *bluemonday.Policy
)

func emailBodyPolicy() *bluemonday.Policy {
	emailPolicyOnce.Do(func() {
		emailPolicy = bluemonday.UGCPolicy()
		emailPolicy.AllowAttrs("style").Globally()
	})
	return emailPolicy
}

var cleanSubject = sanitizer.Compose(
	sanitizer.SingleLine,
	sanitizer.PreventHeaderInjection,
	sanitizer.Limit(emailSubjectMaxLen),
)

// EmailSubmitter notifies a sales inbox about every lead. The lead's address
// is used as Reply-To.
type EmailSubmitter struct {
	sender email.EmailSender
	to     string
}

func NewEmailSubmitter(sender email.EmailSender, to string) *EmailSubmitter {
	return &EmailSubmitter{sender: sender, to: to}
}

func (s *EmailSubmitter) Submit(ctx context.Context, sub Submission) error {
	body, err := templates.RenderNode(ctx, leadEmail(sub))
	if err != nil {
		return fmt.Errorf("render lead email: %w", err)
	}

	return s.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   s.to,
		ReplyTo:  sanitizer.NormalizeEmail(sub.Fields.Get(FieldEmail)),
		Subject:  emailSubject(sub),
		BodyHTML: emailBodyPolicy().Sanitize(body),
		Tag:      emailTag,
	})
}

func emailSubject(sub Submission) string {
	subject := "New contact request from " + sub.Fields.Get(FieldName)
	if company := sub.Fields.Get(FieldCompany); company != "" {
		subject += " (" + company + ")"
	}
	return cleanSubject(subject)
}
