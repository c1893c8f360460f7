package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landkit/handler"
	"github.com/dmitrymomot/landkit/pkg/binder"
	"github.com/dmitrymomot/landkit/pkg/validator"
)

type html string

func (h html) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(h))
	return err
}

type greetRequest struct {
	Name string `json:"name" form:"name"`
}

func TestWrap(t *testing.T) {
	t.Parallel()

	greet := func(_ handler.Context, req greetRequest) handler.Response {
		return handler.JSON(map[string]string{"hello": req.Name})
	}

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(greet, handler.WithBinders[greetRequest](binder.Signals(), binder.JSON()))

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jordan"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"hello":"Jordan"}`, rec.Body.String())
	})

	t.Run("bind error goes to error handler", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(greet,
			handler.WithBinders[greetRequest](binder.JSON()),
			handler.WithErrorHandler[greetRequest](func(ctx handler.Context, err error) {
				got = err
				ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
			}),
		)

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.ErrorIs(t, got, binder.ErrInvalidJSON)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, struct{}) handler.Response { return nil })
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("error response uses status", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
			return handler.Error(handler.ErrNotFound)
		})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()
		var order []string
		trace := func(name string) handler.Decorator[struct{}] {
			return func(next handler.HandlerFunc[struct{}]) handler.HandlerFunc[struct{}] {
				return func(ctx handler.Context, req struct{}) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
			order = append(order, "handler")
			return handler.Empty()
		}, handler.WithDecorators(trace("outer"), trace("inner")))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, []string{"outer", "inner", "handler"}, order)
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	var verrs validator.ValidationErrors
	verrs.Add(validator.ValidationError{Field: "email", Message: "Please enter a valid email address"})

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", errors.Join(errors.New("invalid"), verrs), http.StatusUnprocessableEntity, "validation_error"},
		{"http error", handler.ErrTooManyRequests, http.StatusTooManyRequests, "too_many_requests"},
		{"bind error", binder.ErrInvalidJSON, http.StatusBadRequest, "bad_request"},
		{"media type", binder.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_server_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			require.NoError(t, handler.JSONError(tt.err).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
		})
	}

	rec := httptest.NewRecorder()
	require.NoError(t, handler.JSONError(verrs).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Contains(t, rec.Body.String(), `"email":"Please enter a valid email address"`)
}

func TestJSON_Status(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.JSON(map[string]string{"status": "submitted"}, handler.WithJSONStatus(http.StatusAccepted)).
		Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}
