package theme

import (
	"maps"
	"slices"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// Well-known token names.
const (
	TokenMode       = "mode"
	TokenBrand      = "brand"
	TokenBrandAlt   = "brand-alt"
	TokenFont       = "font"
	TokenRadius     = "radius"
	AssetStylesheet = "stylesheet"
	AssetScript     = "script"
	AssetLogo       = "logo"
)

// Theme is a resolved, read-only theme. Accessors return copies.
type Theme struct {
	sel    gotheme.Selection
	mode   Mode
	tokens map[string]string
	vars   map[string]string
	styles Styles
}

// newTheme derives the mode and the style table from a selection. A variant
// named "dark" without its own mode token switches the theme to dark mode.
func newTheme(sel gotheme.Selection) *Theme {
	tokens := sel.Tokens()
	if v, ok := sel.Manifest.Variants[sel.Variant]; ok && ParseMode(sel.Variant) == ModeDark {
		if _, set := v.Tokens[TokenMode]; !set {
			tokens[TokenMode] = string(ModeDark)
		}
	}

	// Class overrides and the mode are not CSS values.
	vars := sel.CSSVariables("")
	delete(vars, "--"+TokenMode)
	for k := range tokens {
		if _, ok := cutClassToken(k); ok {
			delete(vars, "--"+k)
		}
	}

	mode := ParseMode(tokens[TokenMode])
	return &Theme{
		sel:    sel,
		mode:   mode,
		tokens: tokens,
		vars:   vars,
		styles: buildStyles(mode, tokens),
	}
}

func (t *Theme) Name() string    { return t.sel.Theme }
func (t *Theme) Variant() string { return t.sel.Variant }
func (t *Theme) Mode() Mode      { return t.mode }

// Token returns a token value or an empty string.
func (t *Theme) Token(key string) string {
	return t.tokens[key]
}

func (t *Theme) Tokens() map[string]string {
	return maps.Clone(t.tokens)
}

// CSSVars exposes color and layout tokens as CSS custom properties.
func (t *Theme) CSSVars() map[string]string {
	return maps.Clone(t.vars)
}

// CSSVarsStyle renders CSSVars as an inline style declaration with stable order.
func (t *Theme) CSSVarsStyle() string {
	keys := slices.Sorted(maps.Keys(t.vars))
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(t.vars[k])
		b.WriteByte(';')
	}
	return b.String()
}

// AssetURL resolves an asset key to its public URL. Unknown keys yield "".
// Paths without a scheme are rooted at "/".
func (t *Theme) AssetURL(key string) string {
	u, ok := t.sel.Asset(key)
	if !ok {
		return ""
	}
	if !strings.HasPrefix(u, "/") && !strings.Contains(u, "://") {
		u = "/" + u
	}
	return u
}

// Class returns the class list for el. Unknown elements yield "".
func (t *Theme) Class(el Element) string {
	return t.styles[el]
}

// ClassIf returns the class for whenTrue or whenFalse depending on cond.
func (t *Theme) ClassIf(cond bool, whenTrue, whenFalse Element) string {
	if cond {
		return t.Class(whenTrue)
	}
	return t.Class(whenFalse)
}

// RendererConfig returns the go-theme renderer configuration of the selection.
func (t *Theme) RendererConfig() *gotheme.RendererConfig {
	cfg := t.sel.RendererTheme(nil)
	cfg.Tokens = t.Tokens()
	cfg.CSSVars = t.CSSVars()
	cfg.AssetURL = t.AssetURL
	return &cfg
}
