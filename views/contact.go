package views

import (
	"encoding/json"
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/dmitrymomot/landkit/pkg/theme"
	"github.com/dmitrymomot/landkit/svc/contact"
	"github.com/dmitrymomot/landkit/svc/site"
)

// Element IDs of one mounted form. They embed the form ID so patches never
// hit another form.
func ContactPanelID(formID string) string { return "contact-" + formID }
func SubmitButtonID(formID string) string { return "contact-" + formID + "-submit" }
func FormAlertID(formID string) string    { return "contact-" + formID + "-alert" }

func FieldErrorID(formID, field string) string {
	return "contact-" + formID + "-" + field + "-error"
}

// ContactURL is the endpoint of a form action, "change" or "submit".
func ContactURL(formID, action string) string {
	return "/contact/" + formID + "/" + action
}

// ContactSection is the #contact section of a landing page.
func ContactSection(th *theme.Theme, s site.Site, formID string, state contact.State) g.Node {
	return h.Section(
		h.ID("contact"),
		h.Class(th.Class(theme.SectionAlt)),
		h.Div(
			h.Class("container mx-auto max-w-2xl px-4"),
			h.H2(h.Class(th.Class(theme.Heading)), g.Text(s.ContactTitle())),
			g.If(s.Contact.Intro != "", h.P(h.Class(th.Class(theme.Lead)), g.Text(s.Contact.Intro))),
			h.Div(h.Class("mt-8"), ContactPanel(th, s, formID, state)),
		),
	)
}

// ContactPanel shows the success message while the form is Submitted and
// the form otherwise. It is the element replaced after a submit.
func ContactPanel(th *theme.Theme, s site.Site, formID string, state contact.State) g.Node {
	if state.Status == contact.StatusSubmitted {
		return h.Div(h.ID(ContactPanelID(formID)), ContactSuccess(th, s.SuccessMessage()))
	}
	return h.Div(h.ID(ContactPanelID(formID)), ContactForm(th, s, formID, state))
}

func ContactSuccess(th *theme.Theme, message string) g.Node {
	return h.Div(
		h.Class(th.Class(theme.AlertSuccess)),
		h.Role("status"),
		g.Attr("data-animate", "fade-up"),
		g.Text(message),
	)
}

// ContactForm works with and without JavaScript: datastar posts signals to
// the change and submit endpoints, plain browsers post the form body to the
// submit endpoint.
func ContactForm(th *theme.Theme, s site.Site, formID string, state contact.State) g.Node {
	editable := state.Status.Editable()
	submitURL := ContactURL(formID, "submit")

	return h.Form(
		h.Method("post"),
		h.Action(submitURL),
		h.Class("space-y-5"),
		g.Attr("novalidate"),
		g.Attr("data-signals", signalsJSON(state.Fields)),
		g.Attr("data-on:submit__prevent", fmt.Sprintf("@post('%s')", submitURL)),
		textField(th, formID, state, contact.FieldName, "Name", "text", "name", editable),
		textField(th, formID, state, contact.FieldEmail, "Email", "email", "email", editable),
		textField(th, formID, state, contact.FieldCompany, "Company", "text", "organization", editable),
		interestField(th, formID, s, state, editable),
		messageField(th, formID, state, editable),
		FormAlert(th, formID, state.Errors[contact.FieldSubmit]),
		SubmitButton(th, formID, !editable),
	)
}

// FieldError is always rendered, empty when valid, so a patch can fill it.
func FieldError(th *theme.Theme, formID, field, message string) g.Node {
	return h.P(
		h.ID(FieldErrorID(formID, field)),
		h.Class(th.Class(theme.FieldError)),
		g.If(message != "", h.Role("alert")),
		g.Text(message),
	)
}

// FormAlert holds the submission failure message.
func FormAlert(th *theme.Theme, formID, message string) g.Node {
	if message == "" {
		return h.Div(h.ID(FormAlertID(formID)))
	}
	return h.Div(
		h.ID(FormAlertID(formID)),
		h.Class(th.Class(theme.AlertError)),
		h.Role("alert"),
		g.Text(message),
	)
}

// SubmitButton is disabled and relabelled while a submission is pending.
func SubmitButton(th *theme.Theme, formID string, pending bool) g.Node {
	label := "Send message"
	if pending {
		label = "Sending..."
	}
	return h.Button(
		h.ID(SubmitButtonID(formID)),
		h.Type("submit"),
		h.Class(th.ClassIf(pending, theme.ButtonDisabled, theme.ButtonPrimary)),
		g.If(pending, h.Disabled()),
		g.If(pending, g.Attr("aria-busy", "true")),
		g.Text(label),
	)
}

func textField(th *theme.Theme, formID string, state contact.State, field, label, inputType, autocomplete string, editable bool) g.Node {
	id := "contact-" + formID + "-" + field
	msg := state.Errors[field]
	return h.Div(
		h.Label(h.For(id), h.Class(th.Class(theme.Label)), g.Text(label)),
		h.Input(
			h.ID(id),
			h.Type(inputType),
			h.Name(field),
			h.Value(state.Fields.Get(field)),
			h.AutoComplete(autocomplete),
			h.Class(th.ClassIf(msg != "", theme.InputInvalid, theme.Input)),
			g.If(msg != "", g.Attr("aria-invalid", "true")),
			g.Attr("aria-describedby", FieldErrorID(formID, field)),
			g.If(!editable, h.Disabled()),
			bindAttrs(formID, field),
		),
		FieldError(th, formID, field, msg),
	)
}

func messageField(th *theme.Theme, formID string, state contact.State, editable bool) g.Node {
	id := "contact-" + formID + "-" + contact.FieldMessage
	msg := state.Errors[contact.FieldMessage]
	return h.Div(
		h.Label(h.For(id), h.Class(th.Class(theme.Label)), g.Text("Message")),
		h.Textarea(
			h.ID(id),
			h.Name(contact.FieldMessage),
			h.Rows("5"),
			h.Class(th.ClassIf(msg != "", theme.InputInvalid, theme.Input)),
			g.If(msg != "", g.Attr("aria-invalid", "true")),
			g.Attr("aria-describedby", FieldErrorID(formID, contact.FieldMessage)),
			g.If(!editable, h.Disabled()),
			bindAttrs(formID, contact.FieldMessage),
			g.Text(state.Fields.Get(contact.FieldMessage)),
		),
		FieldError(th, formID, contact.FieldMessage, msg),
	)
}

func interestField(th *theme.Theme, formID string, s site.Site, state contact.State, editable bool) g.Node {
	id := "contact-" + formID + "-" + contact.FieldInterest
	label := s.Contact.Interest
	if label == "" {
		label = "What can we help with?"
	}
	current := state.Fields.Get(contact.FieldInterest)
	return h.Div(
		h.Label(h.For(id), h.Class(th.Class(theme.Label)), g.Text(label)),
		h.Select(
			h.ID(id),
			h.Name(contact.FieldInterest),
			h.Class(th.Class(theme.Input)),
			g.If(!editable, h.Disabled()),
			bindAttrs(formID, contact.FieldInterest),
			g.Map(contact.InterestOptions(), func(opt contact.InterestOption) g.Node {
				return h.Option(
					h.Value(string(opt.Value)),
					g.If(string(opt.Value) == current, h.Selected()),
					g.Text(opt.Label),
				)
			}),
		),
	)
}

// bindAttrs binds an input to its signal and reports edits after a short
// pause.
func bindAttrs(formID, field string) g.Node {
	return g.Group([]g.Node{
		g.Attr("data-bind", field),
		g.Attr("data-on:input__debounce.300ms",
			fmt.Sprintf("@post('%s?field=%s')", ContactURL(formID, "change"), field)),
	})
}

func signalsJSON(fields contact.Fields) string {
	data, err := json.Marshal(map[string]string(fields))
	if err != nil {
		return "{}"
	}
	return string(data)
}
