package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/dmitrymomot/landkit/pkg/theme"
	"github.com/dmitrymomot/landkit/svc/site"
)

func BenefitGrid(th *theme.Theme, benefits []site.Benefit) g.Node {
	if len(benefits) == 0 {
		return nil
	}
	return h.Section(
		h.ID("benefits"),
		h.Class(th.Class(theme.SectionAlt)),
		h.Div(
			h.Class("container mx-auto px-4 grid gap-6 md:grid-cols-3"),
			g.Map(benefits, func(b site.Benefit) g.Node {
				return h.Div(
					h.Class(th.Class(theme.Card)),
					g.Attr("data-animate", "fade-up"),
					g.If(b.Icon != "", h.Span(h.Class("iconify size-8 "+b.Icon), g.Attr("aria-hidden", "true"))),
					h.H3(h.Class("mt-4 text-xl font-semibold"), g.Text(b.Title)),
					h.P(h.Class("mt-2 "+th.Class(theme.Muted)), g.Text(b.Description)),
				)
			}),
		),
	)
}

// PricingGrid renders the plans. At most one plan is featured.
func PricingGrid(th *theme.Theme, plans []site.Plan) g.Node {
	if len(plans) == 0 {
		return nil
	}
	return h.Section(
		h.ID("pricing"),
		h.Class(th.Class(theme.Section)),
		h.Div(
			h.Class("container mx-auto px-4 grid gap-6 md:grid-cols-3 items-start"),
			g.Map(plans, func(p site.Plan) g.Node {
				return h.Div(
					h.Class(th.ClassIf(p.Featured, theme.CardFeatured, theme.Card)),
					g.Attr("data-animate", "fade-up"),
					g.If(p.Featured, h.Span(h.Class(th.Class(theme.Badge)), g.Text("Most popular"))),
					h.H3(h.Class("mt-2 text-xl font-semibold"), g.Text(p.Name)),
					h.P(
						h.Class("mt-4"),
						h.Span(h.Class("text-4xl font-extrabold"), g.Text(p.Price)),
						g.If(p.Period != "", h.Span(h.Class(th.Class(theme.Muted)), g.Text(p.Period))),
					),
					h.Ul(
						h.Class("mt-6 space-y-2"),
						g.Map(p.Features, func(f string) g.Node {
							return h.Li(h.Class("flex gap-2"), h.Span(g.Attr("aria-hidden", "true"), g.Text("✓")), g.Text(f))
						}),
					),
					h.Div(
						h.Class("mt-6"),
						ctaLink(th, p.CTA, theme.ButtonPrimary),
					),
				)
			}),
		),
	)
}
