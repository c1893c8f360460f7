// Package sanitizer cleans user-entered text before it is stored or rendered.
//
// The central entry point is Field, which every contact-form value passes
// through on each edit:
//
//	name := sanitizer.Field("  <b>Jordan</b> ") // "bJordan/b"
//
// Field removes angle brackets and surrounding whitespace, and returns an
// empty string for anything that is not a string. The result is stable:
// Field(Field(x)) == Field(x).
//
// Smaller helpers (Trim, RemoveChars, SingleLine, MaxLength, ...) can be
// combined with Apply and Compose into reusable pipelines:
//
//	subject := sanitizer.Compose(
//	    sanitizer.SingleLine,
//	    sanitizer.PreventHeaderInjection,
//	    sanitizer.Limit(120),
//	)
//
// None of the helpers returns an error and the package holds no state, so
// everything is safe for concurrent use.
package sanitizer
