package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/dmitrymomot/landkit/handler"
	"github.com/dmitrymomot/landkit/pkg/theme"
	"github.com/dmitrymomot/landkit/svc/contact"
)

// LandingPage is the full page of a site variant with a mounted form.
func LandingPage(cfg PageConfig, formID string, state contact.State) g.Node {
	th := cfg.Theme
	return Layout(cfg,
		Hero(th, cfg.Site.Hero),
		BenefitGrid(th, cfg.Site.Benefits),
		PricingGrid(th, cfg.Site.Plans),
		ContactSection(th, cfg.Site, formID, state),
	)
}

// ContactPage renders only the contact section.
func ContactPage(cfg PageConfig, formID string, state contact.State) g.Node {
	if cfg.Title == "" {
		cfg.Title = cfg.Site.ContactTitle() + " | " + cfg.Site.Name
	}
	return Layout(cfg, ContactSection(cfg.Theme, cfg.Site, formID, state))
}

func ErrorPage(th *theme.Theme, p handler.ErrorPageParams) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		h.HTML(
			h.Lang("en"),
			g.Attr("data-theme", th.Name()),
			g.If(th.Mode() == theme.ModeDark, h.Class("dark")),
			g.Attr("style", th.CSSVarsStyle()),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				h.TitleEl(g.Text(p.Error)),
				g.If(th.AssetURL(theme.AssetStylesheet) != "",
					h.Link(h.Rel("stylesheet"), h.Href(th.AssetURL(theme.AssetStylesheet))),
				),
			),
			h.Body(
				h.Class(th.Class(theme.Page)),
				h.Main(
					h.Class("container mx-auto px-4 py-24 text-center"),
					h.P(h.Class(th.Class(theme.Badge)), g.Text(strconv.Itoa(p.StatusCode))),
					h.H1(h.Class("mt-4 "+th.Class(theme.Heading)), g.Text(p.Error)),
					h.Div(
						h.Class("mt-8 flex justify-center gap-3"),
						h.A(h.Href("/"), h.Class(th.Class(theme.ButtonPrimary)), g.Text("Back to home")),
						g.If(p.RetryURL != "" && p.StatusCode >= 500,
							h.A(h.Href(p.RetryURL), h.Class(th.Class(theme.ButtonSecondary)), g.Text("Try again")),
						),
					),
					g.If(p.RequestID != "",
						h.P(h.Class("mt-8 "+th.Class(theme.Muted)), g.Text("Request ID: "+p.RequestID)),
					),
				),
			),
		),
	})
}

// ErrorToast is prepended to the toast container for datastar requests.
func ErrorToast(th *theme.Theme, p handler.ErrorToastParams) g.Node {
	return h.Div(
		h.Class(th.Class(theme.AlertError)+" shadow-lg"),
		h.Role("alert"),
		g.Attr("data-toast", p.Type),
		h.Span(g.Text(p.Message)),
		h.Button(
			h.Type("button"),
			h.Class("ml-4"),
			g.Attr("aria-label", "Dismiss"),
			g.Attr("data-on:click", "el.parentElement.remove()"),
			g.Text("×"),
		),
	)
}
