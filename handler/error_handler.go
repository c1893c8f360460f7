package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/landkit/pkg/binder"
	"github.com/dmitrymomot/landkit/pkg/logger"
	"github.com/dmitrymomot/landkit/pkg/requestid"
	"github.com/dmitrymomot/landkit/pkg/validator"
)

// ErrorPageParams contains data for rendering error pages.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams contains data for rendering error toasts.
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders a full page for regular requests.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders a toast for datastar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#toast-container".
	ToastTarget string

	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo is the classified form of an error.
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]string
	Type       string
	LogLevel   slog.Level
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrInternalServerError.Key,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		info.StatusCode = http.StatusUnprocessableEntity
		info.Code = "validation_error"
		info.Message = "Please correct the highlighted fields"
		info.Details = verrs.Map()
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Code = httpErr.Key
		info.Message = http.StatusText(httpErr.Code)
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode = http.StatusUnsupportedMediaType
		info.Code = ErrUnsupportedMediaType.Key
		info.Message = http.StatusText(http.StatusUnsupportedMediaType)
	case binder.IsBindError(err):
		info.StatusCode = http.StatusBadRequest
		info.Code = ErrBadRequest.Key
		info.Message = err.Error()
	}

	info.Type = "error"
	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler returns an ErrorHandler that answers datastar requests with
// a toast patch, JSON clients with an ErrorDetail body and everyone else with
// an error page. Every error is logged with the request ID.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		requestID := requestid.FromContext(r.Context())
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(requestID),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		var renderErr error
		switch {
		case IsDataStar(r) && cfg.ErrorToast != nil:
			renderErr = Templ(
				cfg.ErrorToast(ErrorToastParams{Message: info.Message, Type: info.Type, RequestID: requestID}),
				WithTarget(cfg.ToastTarget),
				WithPatchMode(cfg.ToastMode),
			).Render(w, r)
		case WantsJSON(r):
			renderErr = JSONError(err).Render(w, r)
		case cfg.ErrorPage == nil:
			http.Error(w, info.Message, info.StatusCode)
		default:
			renderErr = TemplStatus(info.StatusCode, cfg.ErrorPage(ErrorPageParams{
				Error:      info.Message,
				StatusCode: info.StatusCode,
				RequestID:  requestID,
				RetryURL:   r.URL.Path,
			})).Render(w, r)
		}

		if renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.RequestID(requestID),
				logger.Error(renderErr),
			)
		}
	}
}
