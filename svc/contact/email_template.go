package contact

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// leadEmail renders the notification sent to the sales inbox.
func leadEmail(sub Submission) g.Node {
	row := func(label, value string) g.Node {
		return h.Tr(
			h.Td(h.Style("padding:4px 12px 4px 0;color:#6b7280;vertical-align:top"), g.Text(label)),
			h.Td(h.Style("padding:4px 0"), g.Text(value)),
		)
	}

	return h.Div(
		h.Style("font-family:Arial,Helvetica,sans-serif;font-size:14px;color:#111827"),
		h.H2(h.Style("font-size:18px;margin:0 0 12px"), g.Text("New contact request")),
		h.Table(
			row("Name", sub.Fields.Get(FieldName)),
			row("Email", sub.Fields.Get(FieldEmail)),
			g.If(sub.Fields.Get(FieldCompany) != "", row("Company", sub.Fields.Get(FieldCompany))),
			row("Interest", sub.Interest().Label()),
			g.If(sub.Meta.Site != "", row("Site", sub.Meta.Site)),
		),
		h.H3(h.Style("font-size:15px;margin:16px 0 8px"), g.Text("Message")),
		h.P(h.Style("white-space:pre-wrap;margin:0"), g.Text(sub.Fields.Get(FieldMessage))),
		h.P(
			h.Style("margin-top:24px;font-size:12px;color:#9ca3af"),
			g.Textf("Submission %s received %s", sub.ID, sub.SubmittedAt.Format("2006-01-02 15:04 MST")),
		),
	)
}
