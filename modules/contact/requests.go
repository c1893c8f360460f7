package contact

import (
	contactsvc "github.com/dmitrymomot/landkit/svc/contact"
)

// fieldValues mirrors the form inputs. The same names are used for datastar
// signals, JSON keys and form fields. A nil pointer means the client did not
// send that input.
type fieldValues struct {
	Name     *string `json:"name" form:"name"`
	Email    *string `json:"email" form:"email"`
	Company  *string `json:"company" form:"company"`
	Message  *string `json:"message" form:"message"`
	Interest *string `json:"interest" form:"interest"`
}

// fields returns only the inputs present in the request.
func (v fieldValues) fields() contactsvc.Fields {
	out := contactsvc.Fields{}
	for field, value := range map[string]*string{
		contactsvc.FieldName:     v.Name,
		contactsvc.FieldEmail:    v.Email,
		contactsvc.FieldCompany:  v.Company,
		contactsvc.FieldMessage:  v.Message,
		contactsvc.FieldInterest: v.Interest,
	} {
		if value != nil {
			out[field] = *value
		}
	}
	return out
}

type pageRequest struct {
	Site string `query:"site"`
}

type changeRequest struct {
	FormID string `path:"formID"`
	Field  string `query:"field" json:"-" form:"field"`
	// Value is used by non-datastar clients; datastar sends every signal.
	Value string `json:"value" form:"value"`
	fieldValues
}

func (r changeRequest) value() string {
	if r.Value != "" {
		return r.Value
	}
	return r.fields()[r.Field]
}

type submitRequest struct {
	FormID string `path:"formID" json:"-"`
	fieldValues
}

type apiRequest struct {
	Site string `json:"site" form:"site"`
	fieldValues
}

// apiResponse is the body of every /api/contact answer.
type apiResponse struct {
	Status contactsvc.Outcome `json:"status"`
	Errors contactsvc.Errors  `json:"errors,omitempty"`
}
