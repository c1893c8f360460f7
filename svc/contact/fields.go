package contact

import "maps"

// Field names accepted by the form. FieldSubmit is only used as an error key.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldCompany  = "company"
	FieldMessage  = "message"
	FieldInterest = "interest"
	FieldSubmit   = "submit"
)

// Interest is the topic a lead selected in the form.
type Interest string

const (
	InterestGeneral     Interest = "general"
	InterestDemo        Interest = "demo"
	InterestPricing     Interest = "pricing"
	InterestPartnership Interest = "partnership"

	DefaultInterest = InterestGeneral
)

// InterestOption is a value/label pair for the interest select.
type InterestOption struct {
	Value Interest
	Label string
}

var interestOptions = []InterestOption{
	{Value: InterestGeneral, Label: "General inquiry"},
	{Value: InterestDemo, Label: "Request a demo"},
	{Value: InterestPricing, Label: "Pricing"},
	{Value: InterestPartnership, Label: "Partnership"},
}

// InterestOptions returns the select options in display order.
func InterestOptions() []InterestOption {
	out := make([]InterestOption, len(interestOptions))
	copy(out, interestOptions)
	return out
}

// Label returns the human readable label, or the raw value for unknown interests.
func (i Interest) Label() string {
	for _, opt := range interestOptions {
		if opt.Value == i {
			return opt.Label
		}
	}
	return string(i)
}

// Fields maps a field name to its sanitized value.
type Fields map[string]string

// InitialFields returns the values of a freshly mounted form.
func InitialFields() Fields {
	return Fields{
		FieldName:     "",
		FieldEmail:    "",
		FieldCompany:  "",
		FieldMessage:  "",
		FieldInterest: string(DefaultInterest),
	}
}

// IsFormField reports whether field is one of the form inputs.
func IsFormField(field string) bool {
	switch field {
	case FieldName, FieldEmail, FieldCompany, FieldMessage, FieldInterest:
		return true
	}
	return false
}

// Get returns the value of field or an empty string.
func (f Fields) Get(field string) string {
	return f[field]
}

// Clone returns an independent copy.
func (f Fields) Clone() Fields {
	if f == nil {
		return Fields{}
	}
	return maps.Clone(f)
}

// Errors maps a field name to a user facing message.
// Only failing fields are present.
type Errors map[string]string

// Has reports whether field has an error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Clone returns an independent copy.
func (e Errors) Clone() Errors {
	if e == nil {
		return Errors{}
	}
	return maps.Clone(e)
}
