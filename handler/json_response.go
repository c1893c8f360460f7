package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorDetail is the JSON body written for errors.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus sets the HTTP status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON encodes v as the response body with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError writes err as {"error": ErrorDetail} with the status derived
// from the error.
func JSONError(err error) Response {
	info := classifyError(err)
	return &jsonResponse{
		status: info.StatusCode,
		body: map[string]ErrorDetail{"error": {
			Code:    info.Code,
			Message: info.Message,
			Details: info.Details,
		}},
	}
}
