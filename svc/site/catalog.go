package site

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed sites.yaml
var builtinCatalog []byte

// Catalog is an immutable, ordered set of sites. The first site is the default.
type Catalog struct {
	sites  []Site
	bySlug map[string]int
}

type catalogFile struct {
	Sites []Site `yaml:"sites"`
}

// Decode reads a YAML catalog.
func Decode(r io.Reader) (*Catalog, error) {
	var cf catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return New(cf.Sites...)
}

// LoadFile reads a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// Builtin returns the embedded catalog.
func Builtin() (*Catalog, error) {
	return Decode(bytes.NewReader(builtinCatalog))
}

// MustBuiltin is like Builtin but panics on error.
func MustBuiltin() *Catalog {
	c, err := Builtin()
	if err != nil {
		panic(err)
	}
	return c
}

// New validates sites and builds a catalog.
func New(sites ...Site) (*Catalog, error) {
	if len(sites) == 0 {
		return nil, fmt.Errorf("%w: at least one site is required", ErrInvalidCatalog)
	}
	c := &Catalog{
		sites:  slices.Clone(sites),
		bySlug: make(map[string]int, len(sites)),
	}
	for i, s := range c.sites {
		if err := s.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.bySlug[s.Slug]; dup {
			return nil, fmt.Errorf("%w: duplicate slug %q", ErrInvalidCatalog, s.Slug)
		}
		c.bySlug[s.Slug] = i
	}
	return c, nil
}

// Lookup returns the site with the given slug.
func (c *Catalog) Lookup(slug string) (Site, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Site{}, fmt.Errorf("%w: %s", ErrSiteNotFound, slug)
	}
	return c.sites[i], nil
}

// Default returns the first site of the catalog.
func (c *Catalog) Default() Site {
	return c.sites[0]
}

// Slugs returns site slugs in catalog order.
func (c *Catalog) Slugs() []string {
	out := make([]string, len(c.sites))
	for i, s := range c.sites {
		out[i] = s.Slug
	}
	return out
}

func (c *Catalog) Len() int { return len(c.sites) }
