package handler

import (
	"encoding/json"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is a Context with an open datastar event stream. Patches are
// flushed as they are sent, so the browser sees each one immediately.
type StreamContext interface {
	Context
	SendComponent(component TemplComponent, opts ...TemplOption) error
	// SendSignals merges values into the page's signals.
	SendSignals(signals map[string]any) error
}

// SSEHandler drives a datastar event stream until it returns.
type SSEHandler func(stream StreamContext) error

// SSE streams several patches over one response. The contact form uses it
// to show the pending state before a slow submission finishes:
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		if err := stream.SendComponent(views.SubmitButton(id, true)); err != nil {
//			return err
//		}
//		_ = form.Submit(stream)
//		return stream.SendComponent(views.ContactPanel(id, form.State()))
//	})
//
// Plain requests are answered with 400 datastar_required.
func SSE(handler SSEHandler) Response {
	return sseResponse(handler)
}

type sseResponse SSEHandler

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "datastar_required")
	}
	base := NewContext(w, r)
	gen := base.SSE()
	if gen == nil {
		return ErrSSENotInitialized
	}
	return s(&stream{Context: base, gen: gen})
}

type stream struct {
	Context
	gen *datastar.ServerSentEventGenerator
}

func (s *stream) SendComponent(component TemplComponent, opts ...TemplOption) error {
	return s.gen.PatchElementTempl(component, opts...)
}

func (s *stream) SendSignals(signals map[string]any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return s.gen.PatchSignals(data)
}
