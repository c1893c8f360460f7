package theme

import "errors"

var (
	ErrThemeNotFound    = errors.New("theme: not found")
	ErrVariantNotFound  = errors.New("theme: variant not found")
	ErrInvalidManifest  = errors.New("theme: invalid manifest")
	ErrDuplicateTheme   = errors.New("theme: already registered")
	ErrManifestNotFound = errors.New("theme: manifest file not found")
)
