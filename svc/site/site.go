// Package site describes the landing-page variants served by the application.
// Each Site bundles copy, pricing, benefits and the theme it renders with.
package site

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSiteNotFound   = errors.New("site: not found")
	ErrInvalidCatalog = errors.New("site: invalid catalog")
)

// Site is one marketing site.
type Site struct {
	Slug         string    `yaml:"slug"`
	Name         string    `yaml:"name"`
	Tagline      string    `yaml:"tagline"`
	Description  string    `yaml:"description"`
	Theme        string    `yaml:"theme"`
	Variant      string    `yaml:"variant"`
	ContactEmail string    `yaml:"contact_email"`
	Hero         Hero      `yaml:"hero"`
	Benefits     []Benefit `yaml:"benefits"`
	Plans        []Plan    `yaml:"plans"`
	Contact      Contact   `yaml:"contact"`
}

// Hero is the top-of-page section. Words rotate inside the animated title.
type Hero struct {
	Title        string   `yaml:"title"`
	Words        []string `yaml:"words"`
	Subtitle     string   `yaml:"subtitle"`
	PrimaryCTA   Link     `yaml:"primary_cta"`
	SecondaryCTA Link     `yaml:"secondary_cta"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Benefit struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Plan is a pricing tier. Price is preformatted, e.g. "$29".
type Plan struct {
	Name     string   `yaml:"name"`
	Price    string   `yaml:"price"`
	Period   string   `yaml:"period"`
	Features []string `yaml:"features"`
	Featured bool     `yaml:"featured"`
	CTA      Link     `yaml:"cta"`
}

// Contact holds the copy around the contact form.
type Contact struct {
	Title    string `yaml:"title"`
	Intro    string `yaml:"intro"`
	Success  string `yaml:"success"`
	Interest string `yaml:"interest"`
}

// FeaturedPlan returns the index of the featured plan or -1.
func (s Site) FeaturedPlan() int {
	for i, p := range s.Plans {
		if p.Featured {
			return i
		}
	}
	return -1
}

// ContactTitle falls back to a generic heading.
func (s Site) ContactTitle() string {
	if s.Contact.Title != "" {
		return s.Contact.Title
	}
	return "Get in touch"
}

// SuccessMessage falls back to a generic confirmation.
func (s Site) SuccessMessage() string {
	if s.Contact.Success != "" {
		return s.Contact.Success
	}
	return "Thank you! Your message has been sent. We'll get back to you soon."
}

func (s Site) validate() error {
	switch {
	case strings.TrimSpace(s.Slug) == "":
		return fmt.Errorf("%w: slug is required", ErrInvalidCatalog)
	case strings.ContainsAny(s.Slug, "/ "):
		return fmt.Errorf("%w: slug %q must not contain spaces or slashes", ErrInvalidCatalog, s.Slug)
	case strings.TrimSpace(s.Name) == "":
		return fmt.Errorf("%w: %s: name is required", ErrInvalidCatalog, s.Slug)
	case strings.TrimSpace(s.Theme) == "":
		return fmt.Errorf("%w: %s: theme is required", ErrInvalidCatalog, s.Slug)
	}
	featured := 0
	for _, p := range s.Plans {
		if p.Featured {
			featured++
		}
	}
	if featured > 1 {
		return fmt.Errorf("%w: %s: at most one featured plan", ErrInvalidCatalog, s.Slug)
	}
	return nil
}
