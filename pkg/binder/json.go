package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize bounds JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSON decodes an application/json body strictly: unknown fields, trailing
// data and bodies over DefaultMaxJSONSize are rejected with ErrInvalidJSON.
// Datastar requests and non-JSON content types yield ErrBinderNotApplicable.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if isDatastar(r) {
			return ErrBinderNotApplicable
		}
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			return ErrBinderNotApplicable
		}

		dec := json.NewDecoder(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		dec.DisallowUnknownFields()

		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		if dec.InputOffset() > DefaultMaxJSONSize {
			return fmt.Errorf("%w: body too large (max %d bytes)", ErrInvalidJSON, DefaultMaxJSONSize)
		}
		if dec.More() {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}
		return nil
	}
}

// Require wraps binders and fails with ErrUnsupportedMediaType when none of
// them applies to the request.
func Require(binders ...func(r *http.Request, v any) error) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		for _, bind := range binders {
			err := bind(r, v)
			if errors.Is(err, ErrBinderNotApplicable) {
				continue
			}
			return err
		}
		if r.Header.Get("Content-Type") == "" {
			return ErrMissingContentType
		}
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, r.Header.Get("Content-Type"))
	}
}
