// Package contact implements the contact form workflow of a landing page:
// field sanitization, validation, and a guarded submission state machine that
// hands valid leads to a pluggable Submitter.
//
// A Form is owned by a single page mount. Its lifecycle is
//
//	Idle -> Submitting -> Submitted -> Idle   (auto reset after a delay)
//	Idle -> Submitting -> Failed    -> Idle   (on edit or on the next submit)
//
// Every value stored through Change is sanitized first. Submit validates the
// fields, refuses to start while another submission is running and invokes the
// submitter exactly once per accepted attempt:
//
//	form := contact.NewForm(contact.NewEmailSubmitter(sender, "sales@example.com"),
//		contact.WithLogger(log),
//		contact.WithMeta(contact.Meta{Site: "payflow"}),
//	)
//	defer form.Close()
//
//	form.Change(contact.FieldName, "Jordan Lee")
//	form.Change(contact.FieldEmail, "jordan@example.com")
//	form.Change(contact.FieldMessage, "Please contact me about pricing options.")
//
//	if err := form.Submit(ctx); err != nil {
//		switch {
//		case errors.Is(err, contact.ErrInvalidFields):
//			// render form.State().Errors next to the inputs
//		case errors.Is(err, contact.ErrSubmissionFailed):
//			// form.State().Errors[contact.FieldSubmit] holds the user message
//		}
//	}
//
// Transport failures of any kind collapse into the single FieldSubmit error.
// The underlying cause is logged together with the submission ID and returned
// joined with ErrSubmissionFailed.
package contact
