package views

import (
	"fmt"

	"github.com/dmitrymomot/landkit/pkg/theme"
	"github.com/dmitrymomot/landkit/svc/site"
)

// Themes maps site slugs to their resolved themes. It is built once at
// startup and read concurrently afterwards.
type Themes struct {
	bySlug   map[string]*theme.Theme
	fallback *theme.Theme
}

// NewThemes resolves the theme of every site in catalog. The default site's
// theme is used for pages that belong to no site, such as error pages.
func NewThemes(reg *theme.Registry, catalog *site.Catalog) (*Themes, error) {
	t := &Themes{bySlug: make(map[string]*theme.Theme, catalog.Len())}
	for _, slug := range catalog.Slugs() {
		s, err := catalog.Lookup(slug)
		if err != nil {
			return nil, err
		}
		th, err := reg.Resolve(s.Theme, s.Variant)
		if err != nil {
			return nil, fmt.Errorf("site %s: %w", slug, err)
		}
		t.bySlug[slug] = th
	}
	t.fallback = t.bySlug[catalog.Default().Slug]
	return t, nil
}

// For returns the theme of slug, or the default theme for unknown slugs.
func (t *Themes) For(slug string) *theme.Theme {
	if th, ok := t.bySlug[slug]; ok {
		return th
	}
	return t.fallback
}

func (t *Themes) Default() *theme.Theme {
	return t.fallback
}
