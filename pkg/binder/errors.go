package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidPath          = errors.New("invalid path parameter")
	ErrInvalidSignals       = errors.New("invalid datastar signals")

	// ErrBinderNotApplicable tells the caller to try the next binder: the
	// request does not carry the kind of payload this binder reads.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)

// IsBindError reports whether err was produced by a binder because of a bad
// request rather than a programming error.
func IsBindError(err error) bool {
	return errors.Is(err, ErrInvalidJSON) ||
		errors.Is(err, ErrInvalidForm) ||
		errors.Is(err, ErrInvalidPath) ||
		errors.Is(err, ErrInvalidSignals) ||
		errors.Is(err, ErrMissingContentType)
}
