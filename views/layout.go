package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/dmitrymomot/landkit/pkg/theme"
	"github.com/dmitrymomot/landkit/svc/site"
)

// DatastarScript is the client bundle matching the datastar-go SDK.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// ToastContainerID is the element error toasts are prepended to.
const ToastContainerID = "toast-container"

// PageConfig carries what every page needs from its site.
type PageConfig struct {
	Title       string
	Description string
	Site        site.Site
	Theme       *theme.Theme
}

func (c PageConfig) title() string {
	switch {
	case c.Title != "":
		return c.Title
	case c.Site.Tagline != "":
		return c.Site.Name + " | " + c.Site.Tagline
	default:
		return c.Site.Name
	}
}

// Layout wraps content in the HTML document of the site. Theme tokens are
// exposed as CSS custom properties on the root element.
func Layout(cfg PageConfig, content ...g.Node) g.Node {
	th := cfg.Theme
	description := cfg.Description
	if description == "" {
		description = cfg.Site.Description
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		h.HTML(
			h.Lang("en"),
			g.Attr("data-theme", th.Name()),
			g.If(th.Variant() != "", g.Attr("data-variant", th.Variant())),
			g.If(th.Mode() == theme.ModeDark, h.Class("dark")),
			g.Attr("style", th.CSSVarsStyle()),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				h.TitleEl(g.Text(cfg.title())),
				g.If(description != "", h.Meta(h.Name("description"), h.Content(description))),
				h.Meta(g.Attr("property", "og:title"), h.Content(cfg.title())),
				h.Meta(g.Attr("property", "og:type"), h.Content("website")),
				g.If(th.AssetURL(theme.AssetStylesheet) != "",
					h.Link(h.Rel("stylesheet"), h.Href(th.AssetURL(theme.AssetStylesheet))),
				),
				h.Script(h.Type("module"), h.Src(DatastarScript)),
				g.If(th.AssetURL(theme.AssetScript) != "",
					h.Script(h.Type("module"), h.Src(th.AssetURL(theme.AssetScript)), h.Defer()),
				),
			),
			h.Body(
				h.Class(th.Class(theme.Page)),
				navbar(th, cfg.Site),
				h.Main(g.Group(content)),
				h.Div(
					h.ID(ToastContainerID),
					h.Class("fixed top-4 right-4 z-50 flex flex-col gap-2"),
					g.Attr("aria-live", "polite"),
				),
				footer(th, cfg.Site),
			),
		),
	})
}

func navbar(th *theme.Theme, s site.Site) g.Node {
	logo := th.AssetURL(theme.AssetLogo)
	return h.Nav(
		h.Class(th.Class(theme.Nav)),
		h.Div(
			h.Class("container mx-auto flex items-center justify-between px-4 py-4"),
			h.A(
				h.Href("/s/"+s.Slug),
				h.Class("flex items-center gap-2 font-bold text-lg"),
				g.If(logo != "", h.Img(h.Src(logo), h.Alt(s.Name), h.Class("h-8 w-auto"))),
				g.Text(s.Name),
			),
			h.Div(
				h.Class("hidden md:flex items-center gap-6"),
				g.If(len(s.Benefits) > 0, h.A(h.Href("#benefits"), g.Text("Benefits"))),
				g.If(len(s.Plans) > 0, h.A(h.Href("#pricing"), g.Text("Pricing"))),
				h.A(h.Href("#contact"), h.Class(th.Class(theme.ButtonSecondary)), g.Text("Contact")),
			),
		),
	)
}

func footer(th *theme.Theme, s site.Site) g.Node {
	return h.Footer(
		h.Class(th.Class(theme.Footer)),
		h.Div(
			h.Class("container mx-auto px-4 py-8 flex flex-col md:flex-row justify-between gap-4"),
			h.P(h.Class(th.Class(theme.Muted)), g.Text(s.Name+". "+s.Tagline)),
			g.If(s.ContactEmail != "",
				h.A(h.Href("mailto:"+s.ContactEmail), h.Class(th.Class(theme.Muted)), g.Text(s.ContactEmail)),
			),
		),
	)
}
