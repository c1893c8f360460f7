package archive

import "errors"

var (
	ErrInvalidConfig      = errors.New("archive: invalid configuration")
	ErrFailedToLoadConfig = errors.New("archive: failed to load aws config")
	ErrInvalidKey         = errors.New("archive: invalid object key")
	ErrEncode             = errors.New("archive: failed to encode document")
	ErrBucketNotFound     = errors.New("archive: bucket not found")
	ErrAccessDenied       = errors.New("archive: access denied")
	ErrServiceUnavailable = errors.New("archive: service unavailable")
	ErrOperationTimeout   = errors.New("archive: operation timeout")
	ErrOperationCanceled  = errors.New("archive: operation canceled")
	ErrPutFailed          = errors.New("archive: put object failed")
)
