// Package email sends transactional messages through a provider-agnostic
// EmailSender.
//
// Three implementations are available:
//   - Postmark (NewPostmarkClient) for production delivery
//   - Mailgun (NewMailgunClient) as an alternative provider
//   - DevSender, which writes each message to disk as .html + .json
//
// New picks one of them from Config.Provider:
//
//	var cfg email.Config
//	config.MustLoad(&cfg)
//	sender := email.MustNew(cfg)
//
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "sales@example.com",
//	    ReplyTo:  "jordan@example.com",
//	    Subject:  "New lead: Jordan Lee",
//	    BodyHTML: body,
//	    Tag:      "contact-form",
//	})
//
// Every sender validates params before talking to the provider. Delivery
// failures wrap ErrFailedToSendEmail; configuration problems wrap
// ErrInvalidConfig.
//
// HTML bodies can be produced with the templates subpackage, which renders
// templ components and gomponents nodes to strings.
package email
