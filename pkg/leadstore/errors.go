package leadstore

import "errors"

var (
	ErrNotFound      = errors.New("leadstore: lead not found")
	ErrInvalidLead   = errors.New("leadstore: invalid lead")
	ErrDuplicateLead = errors.New("leadstore: lead already exists")
	ErrOpen          = errors.New("leadstore: failed to open database")
	ErrStorage       = errors.New("leadstore: storage failure")
)
