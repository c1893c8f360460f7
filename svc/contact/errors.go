package contact

import "errors"

var (
	ErrInvalidFields        = errors.New("contact: invalid fields")
	ErrSubmissionInProgress = errors.New("contact: submission already in progress")
	ErrSubmissionFailed     = errors.New("contact: submission failed")
	ErrFormClosed           = errors.New("contact: form is closed")
	ErrNoSubmitter          = errors.New("contact: submitter is not configured")
)
