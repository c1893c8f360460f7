package contact

import (
	"github.com/dmitrymomot/landkit/pkg/validator"
)

// Upper bounds keep a single lead within a sane mail or webhook payload.
const (
	NameMinLength    = 2
	NameMaxLength    = 100
	EmailMaxLength   = 254
	CompanyMaxLength = 200
	MessageMinLength = 10
	MessageMaxLength = 5000
)

// Validate returns the first failing rule message for every invalid field.
// The map is empty when all rules pass.
func Validate(fields Fields) Errors {
	return Errors(validate(fields).Map())
}

func validate(fields Fields) validator.ValidationErrors {
	name := fields.Get(FieldName)
	email := fields.Get(FieldEmail)
	message := fields.Get(FieldMessage)

	err := validator.ApplyFirst(
		validator.Required(FieldName, name).WithMessage("Name is required"),
		validator.MinLen(FieldName, name, NameMinLength).WithMessage("Name must be at least 2 characters"),
		validator.MaxLen(FieldName, name, NameMaxLength).WithMessage("Name must be at most 100 characters"),

		validator.Required(FieldEmail, email).WithMessage("Email is required"),
		validator.ValidEmail(FieldEmail, email).WithMessage("Please enter a valid email address"),
		validator.MaxLen(FieldEmail, email, EmailMaxLength).WithMessage("Email must be at most 254 characters"),

		validator.MaxLen(FieldCompany, fields.Get(FieldCompany), CompanyMaxLength).WithMessage("Company must be at most 200 characters"),

		validator.Required(FieldMessage, message).WithMessage("Message is required"),
		validator.MinLen(FieldMessage, message, MessageMinLength).WithMessage("Message must be at least 10 characters"),
		validator.MaxLen(FieldMessage, message, MessageMaxLength).WithMessage("Message must be at most 5000 characters"),
	)
	if err == nil {
		return nil
	}
	return validator.ExtractValidationErrors(err)
}
