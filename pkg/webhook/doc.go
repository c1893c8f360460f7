// Package webhook delivers signed JSON events to a single HTTP endpoint.
//
// A Sender is bound to one endpoint at construction time. Each Send makes
// exactly one POST attempt; callers that want retries must loop themselves.
//
//	sender, err := webhook.New("https://crm.example.com/hooks/leads",
//	    webhook.WithSignature(secret),
//	    webhook.WithTimeout(5*time.Second),
//	    webhook.WithCircuitBreaker(webhook.NewCircuitBreaker(5, 2, 30*time.Second)),
//	)
//
//	res, err := sender.Send(ctx, "lead.created", lead)
//
// The request body is an Event envelope ({id, type, created_at, data}).
// With a secret configured the request carries X-Webhook-Signature,
// X-Webhook-Timestamp and X-Webhook-ID headers, where the signature is
// hex(HMAC-SHA256(secret, timestamp + "." + body)). Receivers verify with
// ExtractSignatureHeaders and VerifySignature.
//
// Errors are classified: ErrPermanentFailure for 4xx responses other than
// 408, 425 and 429; ErrTemporaryFailure for 5xx and transport errors;
// ErrTimeout when the per-request timeout fires; ErrCircuitOpen when the
// breaker rejects the call without touching the network.
package webhook
