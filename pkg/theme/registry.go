package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"sync"

	gotheme "github.com/goliatone/go-theme"
)

//go:embed manifests/*.yaml
var builtin embed.FS

// Registry stores manifests in a go-theme registry and resolves them into
// Themes. Resolved themes are cached; the registry is safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	provider *gotheme.MemoryRegistry
	selector gotheme.Selector
	resolved sync.Map // "name/variant" -> *Theme
}

func NewRegistry() *Registry {
	provider := gotheme.NewRegistry()
	return &Registry{
		provider: provider,
		selector: gotheme.Selector{Registry: provider},
	}
}

// DefaultRegistry returns a registry with the built-in manifests.
func DefaultRegistry() (*Registry, error) {
	sub, err := fs.Sub(builtin, "manifests")
	if err != nil {
		return nil, err
	}
	return LoadRegistry(sub)
}

// MustDefaultRegistry is like DefaultRegistry but panics on error.
func MustDefaultRegistry() *Registry {
	r, err := DefaultRegistry()
	if err != nil {
		panic(fmt.Sprintf("theme: load builtin manifests: %v", err))
	}
	return r
}

// LoadRegistry registers every manifest found in fsys.
func LoadRegistry(fsys fs.FS) (*Registry, error) {
	manifests, err := LoadManifests(fsys)
	if err != nil {
		return nil, err
	}
	r := NewRegistry()
	for _, m := range manifests {
		if err := r.Register(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a manifest. Names must be unique across versions.
func (r *Registry) Register(m *gotheme.Manifest) error {
	if m == nil {
		return fmt.Errorf("%w: manifest is nil", ErrInvalidManifest)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.provider.Get(m.Name); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateTheme, m.Name)
	}
	if err := r.provider.Register(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	return nil
}

// Names returns the registered theme names, sorted.
func (r *Registry) Names() []string {
	refs := r.provider.List()
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}
	return slices.Compact(names)
}

// Resolve selects the named theme and variant. An empty variant selects the
// base manifest alone; an unknown one is an error.
func (r *Registry) Resolve(name, variant string) (*Theme, error) {
	key := name + "/" + variant
	if th, ok := r.resolved.Load(key); ok {
		return th.(*Theme), nil
	}

	sel, err := r.selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrThemeNotFound, name, err)
	}
	if variant != "" {
		if _, ok := sel.Manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %s/%s", ErrVariantNotFound, name, variant)
		}
	}

	th, _ := r.resolved.LoadOrStore(key, newTheme(*sel))
	return th.(*Theme), nil
}
