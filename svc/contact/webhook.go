package contact

import (
	"context"

	"github.com/dmitrymomot/landkit/pkg/webhook"
)

// EventLeadCreated is the webhook event type for new submissions.
const EventLeadCreated = "lead.created"

// WebhookSubmitter posts every submission to a single endpoint.
// Delivery is attempted once; the user retries by submitting again.
type WebhookSubmitter struct {
	sender *webhook.Sender
}

func NewWebhookSubmitter(sender *webhook.Sender) *WebhookSubmitter {
	return &WebhookSubmitter{sender: sender}
}

func (s *WebhookSubmitter) Submit(ctx context.Context, sub Submission) error {
	_, err := s.sender.Send(ctx, EventLeadCreated, sub)
	return err
}
