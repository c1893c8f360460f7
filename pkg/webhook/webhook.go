package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const userAgent = "landkit-webhook/1.0"

// Event is the JSON envelope posted to the endpoint.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Data      any       `json:"data"`
}

// Sender posts events to one endpoint. Safe for concurrent use.
type Sender struct {
	endpoint   string
	client     *http.Client
	timeout    time.Duration
	headers    http.Header
	secret     string
	breaker    *CircuitBreaker
	onDelivery DeliveryHook
}

// New validates endpoint and returns a Sender for it.
func New(endpoint string, opts ...Option) (*Sender, error) {
	if err := validateURL(endpoint); err != nil {
		return nil, err
	}

	s := &Sender{
		endpoint: endpoint,
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		timeout: 10 * time.Second,
		headers: make(http.Header),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// MustNew is like New but panics on error.
func MustNew(endpoint string, opts ...Option) *Sender {
	s, err := New(endpoint, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Endpoint returns the configured URL.
func (s *Sender) Endpoint() string {
	return s.endpoint
}

// Send wraps data into an Event of the given type and posts it once.
func (s *Sender) Send(ctx context.Context, eventType string, data any) (DeliveryResult, error) {
	event := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		CreatedAt: time.Now().UTC(),
		Data:      data,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return DeliveryResult{EventID: event.ID}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	if s.breaker != nil && !s.breaker.Allow() {
		return DeliveryResult{EventID: event.ID, Error: ErrCircuitOpen}, ErrCircuitOpen
	}

	result, err := s.deliver(ctx, event.ID, payload)
	result.Error = err

	if s.breaker != nil {
		if err == nil {
			s.breaker.RecordSuccess()
		} else {
			s.breaker.RecordFailure()
		}
	}
	if s.onDelivery != nil {
		s.onDelivery(result)
	}

	return result, err
}

func (s *Sender) deliver(ctx context.Context, eventID string, payload []byte) (DeliveryResult, error) {
	start := time.Now()
	result := DeliveryResult{EventID: eventID}

	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return result, fmt.Errorf("%w: build request: %w", ErrInvalidConfiguration, err)
	}

	for k, v := range s.headers {
		req.Header[k] = v
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	if s.secret != "" {
		sig, err := SignPayload(s.secret, payload, eventID, time.Now())
		if err != nil {
			return result, err
		}
		for k, v := range sig.Headers() {
			req.Header.Set(k, v)
		}
	}

	resp, err := s.client.Do(req)
	result.Duration = time.Since(start)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return result, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return result, fmt.Errorf("%w: %w", ErrTemporaryFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return result, nil
	}

	// Keep a short, single-line excerpt for logs.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	excerpt := strings.ReplaceAll(strings.TrimSpace(string(body)), "\n", " ")
	if len(excerpt) > 200 {
		excerpt = excerpt[:200] + "..."
	}

	class := ErrTemporaryFailure
	if isPermanentStatus(resp.StatusCode) {
		class = ErrPermanentFailure
	}
	if excerpt == "" {
		return result, fmt.Errorf("%w: endpoint returned status %d", class, resp.StatusCode)
	}
	return result, fmt.Errorf("%w: endpoint returned status %d: %s", class, resp.StatusCode, excerpt)
}

func validateURL(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidURL)
	}
	return nil
}

// isPermanentStatus treats 4xx as permanent except codes that signal a
// transient condition on the receiving side.
func isPermanentStatus(code int) bool {
	if code < 400 || code >= 500 {
		return false
	}
	switch code {
	case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
		return false
	default:
		return true
	}
}
