package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Meta describes where a submission came from.
type Meta struct {
	Site      string `json:"site,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	Referer   string `json:"referer,omitempty"`
}

// Map returns the non-empty meta values keyed by their JSON names.
func (m Meta) Map() map[string]string {
	out := make(map[string]string, 5)
	for k, v := range map[string]string{
		"site":       m.Site,
		"request_id": m.RequestID,
		"ip":         m.IP,
		"user_agent": m.UserAgent,
		"referer":    m.Referer,
	} {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// Submission is the payload handed to a Submitter.
// Fields is a snapshot; later edits to the form do not affect it.
type Submission struct {
	ID          uuid.UUID `json:"id"`
	Fields      Fields    `json:"fields"`
	Meta        Meta      `json:"meta"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Interest returns the selected interest, falling back to DefaultInterest.
func (s Submission) Interest() Interest {
	if v := s.Fields.Get(FieldInterest); v != "" {
		return Interest(v)
	}
	return DefaultInterest
}

// Submitter delivers a validated submission to an external system.
// Any returned error is reported to the user as a generic failure.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, sub Submission) error

func (f SubmitterFunc) Submit(ctx context.Context, sub Submission) error {
	return f(ctx, sub)
}

// Chain runs submitters sequentially. The first error stops the chain and is
// returned as is.
func Chain(submitters ...Submitter) Submitter {
	return SubmitterFunc(func(ctx context.Context, sub Submission) error {
		for _, s := range submitters {
			if s == nil {
				continue
			}
			if err := s.Submit(ctx, sub); err != nil {
				return err
			}
		}
		return nil
	})
}
