// Package validator builds declarative, field-level validation from small Rule
// values.
//
// A Rule pairs a Check func with the ValidationError reported when the check
// fails. Apply evaluates every rule and aggregates the failures into
// ValidationErrors, which implements error and matches ErrValidationFailed via
// errors.Is. ApplyFirst stops evaluating a field after its first failure, which
// is what form UIs want: one message per field.
//
//	err := validator.ApplyFirst(
//	    validator.Required("name", name).WithMessage("Name is required"),
//	    validator.MinLen("name", name, 2).WithMessage("Name must be at least 2 characters"),
//	    validator.ValidEmail("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    fieldErrors := verrs.Map()
//	}
//
// Length rules count runes of the trimmed value. Rules hold no global state
// and are safe for concurrent use.
package validator
