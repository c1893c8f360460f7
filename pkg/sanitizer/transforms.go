package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, t := range transforms {
		value = t(value)
	}
	return value
}

// Compose binds a transform chain once for reuse on every request.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T { return Apply(value, transforms...) }
}

func Trim(s string) string { return strings.TrimSpace(s) }

// MaxLength keeps at most n runes.
func MaxLength(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// Limit is MaxLength bound to n, for use with Compose.
func Limit(n int) func(string) string {
	return func(s string) string { return MaxLength(s, n) }
}

// NormalizeWhitespace collapses every whitespace run into one space and trims.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SingleLine joins the lines of s with single spaces.
func SingleLine(s string) string {
	return NormalizeWhitespace(s)
}

// RemoveControlChars drops control characters other than tab and line breaks.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// RemoveChars drops every rune of chars from s.
func RemoveChars(s, chars string) string {
	if !strings.ContainsAny(s, chars) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

// PreventHeaderInjection removes CR, LF and NUL so s cannot start a new mail
// or HTTP header line.
func PreventHeaderInjection(s string) string {
	return RemoveChars(s, "\r\n\x00")
}

// NormalizeEmail trims and lowercases an address without validating it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
