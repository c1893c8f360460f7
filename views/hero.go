package views

import (
	"encoding/json"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/dmitrymomot/landkit/pkg/theme"
	"github.com/dmitrymomot/landkit/svc/site"
)

// Hero renders the top section. The rotating words are emitted as data
// attributes for the animation script shipped with the theme; without it the
// first word is shown statically.
func Hero(th *theme.Theme, hero site.Hero) g.Node {
	return h.Section(
		h.ID("hero"),
		h.Class(th.Class(theme.Section)),
		g.Attr("data-animate", "fade-up"),
		h.Div(
			h.Class("container mx-auto px-4 text-center"),
			h.H1(
				h.Class(th.Class(theme.Heading)),
				g.Text(hero.Title),
				g.If(len(hero.Words) > 0, g.Group([]g.Node{g.Text(" "), rotatingWords(hero.Words)})),
			),
			g.If(hero.Subtitle != "", h.P(h.Class(th.Class(theme.Lead)), g.Text(hero.Subtitle))),
			h.Div(
				h.Class("mt-8 flex flex-wrap justify-center gap-3"),
				ctaLink(th, hero.PrimaryCTA, theme.ButtonPrimary),
				ctaLink(th, hero.SecondaryCTA, theme.ButtonSecondary),
			),
		),
	)
}

func rotatingWords(words []string) g.Node {
	if len(words) == 0 {
		return nil
	}
	data, err := json.Marshal(words)
	if err != nil {
		return h.Span(g.Text(words[0]))
	}
	return h.Span(
		h.Class("inline-block"),
		g.Attr("data-animate", "rotate-words"),
		g.Attr("data-words", string(data)),
		g.Attr("data-interval", "2500"),
		g.Text(words[0]),
	)
}

func ctaLink(th *theme.Theme, link site.Link, el theme.Element) g.Node {
	if link.Label == "" || link.Href == "" {
		return nil
	}
	return h.A(h.Href(link.Href), h.Class(th.Class(el)), g.Text(link.Label))
}
