package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxFormSize bounds urlencoded and multipart form bodies (1MB).
const DefaultMaxFormSize = 1 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data
// bodies into fields tagged `form:"name"`. Other content types yield
// ErrBinderNotApplicable so JSON or signal binders can run instead.
//
//	type submitRequest struct {
//		Name  string `form:"name" json:"name"`
//		Email string `form:"email" json:"email"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			return ErrBinderNotApplicable
		}

		switch mediaType {
		case "application/x-www-form-urlencoded":
			r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxFormSize)
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindToStruct(v, "form", r.PostForm, ErrInvalidForm)

		case "multipart/form-data":
			r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxFormSize)
			if err := r.ParseMultipartForm(DefaultMaxFormSize); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindToStruct(v, "form", r.MultipartForm.Value, ErrInvalidForm)

		default:
			return ErrBinderNotApplicable
		}
	}
}
