package contact

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/landkit/handler"
	contactsvc "github.com/dmitrymomot/landkit/svc/contact"
	"github.com/dmitrymomot/landkit/views"
)

// resetGrace is added to the reset delay before the success panel is
// replaced, so the form has already returned to Idle.
const resetGrace = 100 * time.Millisecond

var errUnknownField = handler.NewHTTPError(http.StatusBadRequest, "unknown_field")

func (s *Service) page(ctx handler.Context, req pageRequest) handler.Response {
	st, ok := s.lookupSite(req.Site)
	if !ok {
		return handler.Error(handler.ErrNotFound)
	}
	id, state := s.Mount(ctx.Request(), st)
	return handler.Templ(views.Component(views.ContactPage(s.pageConfig(st), id, state)))
}

func (s *Service) change(ctx handler.Context, req changeRequest) handler.Response {
	if !contactsvc.IsFormField(req.Field) {
		return handler.Error(errUnknownField)
	}
	form, ok := s.forms.Get(req.FormID)
	if !ok {
		return handler.Error(ErrFormExpired)
	}

	form.Change(req.Field, req.value())
	state := form.State()

	if !handler.IsDataStar(ctx.Request()) {
		return handler.JSON(state)
	}

	th := s.themes.For(form.Meta().Site)
	return handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendComponent(views.Component(
			views.FieldError(th, req.FormID, req.Field, state.Errors[req.Field]),
		)); err != nil {
			return err
		}
		return stream.SendComponent(views.Component(
			views.FormAlert(th, req.FormID, state.Errors[contactsvc.FieldSubmit]),
		))
	})
}

func (s *Service) submit(ctx handler.Context, req submitRequest) handler.Response {
	form, ok := s.forms.Get(req.FormID)
	if !ok {
		return handler.Error(ErrFormExpired)
	}

	st, _ := s.lookupSite(form.Meta().Site)
	th := s.themes.For(st.Slug)
	r := ctx.Request()

	if handler.IsDataStar(r) {
		return handler.SSE(func(stream handler.StreamContext) error {
			syncFields(form, req.fields())
			if err := stream.SendComponent(views.Component(views.SubmitButton(th, req.FormID, true))); err != nil {
				return err
			}

			err := form.Submit(stream)
			if errors.Is(err, contactsvc.ErrFormClosed) {
				return ErrFormExpired
			}

			state := form.State()
			if err := stream.SendComponent(views.Component(views.ContactPanel(th, st, req.FormID, state))); err != nil {
				return err
			}
			if state.Status != contactsvc.StatusSubmitted {
				return nil
			}

			// Keep the stream open for the display interval and swap the
			// success message back for the empty form.
			timer := time.NewTimer(s.cfg.ResetDelay + resetGrace)
			defer timer.Stop()
			select {
			case <-stream.Done():
				return nil
			case <-timer.C:
			}
			return stream.SendComponent(views.Component(views.ContactPanel(th, st, req.FormID, form.State())))
		})
	}

	syncFields(form, req.fields())
	err := form.Submit(ctx)
	if errors.Is(err, contactsvc.ErrFormClosed) {
		return handler.Error(ErrFormExpired)
	}
	state := form.State()
	status, outcome := submitStatus(err)

	if handler.WantsJSON(r) {
		return handler.JSON(apiResponse{Status: outcome, Errors: state.Errors}, handler.WithJSONStatus(status))
	}
	return handler.TemplStatus(status, views.Component(views.ContactPage(s.pageConfig(st), req.FormID, state)))
}

// api handles one-shot submissions. The form lives for this request only.
func (s *Service) api(ctx handler.Context, req apiRequest) handler.Response {
	st, ok := s.lookupSite(req.Site)
	if !ok {
		return handler.Error(handler.ErrNotFound)
	}

	form := s.newForm(ctx.Request(), st)
	defer form.Close()

	for field, value := range req.fields() {
		if value != "" {
			form.Change(field, value)
		}
	}
	err := form.Submit(ctx)
	status, outcome := submitStatus(err)
	return handler.JSON(apiResponse{Status: outcome, Errors: form.State().Errors}, handler.WithJSONStatus(status))
}

// syncFields applies values the client holds but the form has not seen,
// such as keystrokes still inside the change debounce window.
func syncFields(form *contactsvc.Form, values contactsvc.Fields) {
	current := form.State().Fields
	for field, value := range values {
		if current.Get(field) != value {
			form.Change(field, value)
		}
	}
}

func submitStatus(err error) (int, contactsvc.Outcome) {
	switch {
	case err == nil:
		return http.StatusOK, contactsvc.OutcomeSucceeded
	case errors.Is(err, contactsvc.ErrInvalidFields):
		return http.StatusUnprocessableEntity, contactsvc.OutcomeInvalid
	case errors.Is(err, contactsvc.ErrSubmissionInProgress):
		return http.StatusConflict, contactsvc.OutcomeInProgress
	default:
		return http.StatusBadGateway, contactsvc.OutcomeFailed
	}
}
