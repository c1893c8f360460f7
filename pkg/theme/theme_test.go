package theme_test

import (
	"testing"
	"testing/fstest"

	gotheme "github.com/goliatone/go-theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landkit/pkg/theme"
)

const acmeManifest = `
name: acme
version: "1.0.0"
tokens:
  brand: "#123456"
  class.card: "custom-card"
assets:
  prefix: /assets/themes/acme
  files:
    stylesheet: theme.css
variants:
  dark:
    tokens:
      brand: "#654321"
    assets:
      files:
        logo: logo.dark.svg
`

func newAcme(t *testing.T) *theme.Registry {
	t.Helper()
	reg, err := theme.LoadRegistry(fstest.MapFS{
		"acme.yaml": &fstest.MapFile{Data: []byte(acmeManifest)},
	})
	require.NoError(t, err)
	return reg
}

func TestLoadManifests(t *testing.T) {
	t.Parallel()

	t.Run("reads yaml and json", func(t *testing.T) {
		t.Parallel()
		manifests, err := theme.LoadManifests(fstest.MapFS{
			"acme.yaml":  &fstest.MapFile{Data: []byte(acmeManifest)},
			"plain.json": &fstest.MapFile{Data: []byte(`{"name":"plain","version":"1.0.0"}`)},
			"notes.txt":  &fstest.MapFile{Data: []byte("ignored")},
		})
		require.NoError(t, err)
		require.Len(t, manifests, 2)

		m := manifests[0]
		assert.Equal(t, "acme", m.Name)
		assert.Equal(t, "#123456", m.Tokens["brand"])
		assert.Equal(t, "/assets/themes/acme", m.Assets.Prefix)
		assert.Equal(t, "#654321", m.Variants["dark"].Tokens["brand"])
		assert.Equal(t, "plain", manifests[1].Name)
	})

	t.Run("invalid manifest", func(t *testing.T) {
		t.Parallel()
		_, err := theme.LoadManifests(fstest.MapFS{
			"broken.yaml": &fstest.MapFile{Data: []byte("version: \"1.0.0\"\n")},
		})
		assert.ErrorIs(t, err, theme.ErrInvalidManifest)
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()
		_, err := theme.LoadManifests(fstest.MapFS{})
		assert.ErrorIs(t, err, theme.ErrManifestNotFound)
	})
}

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	reg := newAcme(t)

	t.Run("base", func(t *testing.T) {
		t.Parallel()
		th, err := reg.Resolve("acme", "")
		require.NoError(t, err)
		assert.Equal(t, theme.ModeLight, th.Mode())
		assert.Equal(t, "#123456", th.Token("brand"))
		assert.Equal(t, "/assets/themes/acme/theme.css", th.AssetURL(theme.AssetStylesheet))
		assert.Empty(t, th.AssetURL(theme.AssetLogo))
	})

	t.Run("variant overlays tokens and assets", func(t *testing.T) {
		t.Parallel()
		th, err := reg.Resolve("acme", "dark")
		require.NoError(t, err)
		assert.Equal(t, theme.ModeDark, th.Mode())
		assert.Equal(t, "#654321", th.Token("brand"))
		assert.Equal(t, "/assets/themes/acme/theme.css", th.AssetURL(theme.AssetStylesheet))
		assert.Equal(t, "/assets/themes/acme/logo.dark.svg", th.AssetURL(theme.AssetLogo))
		assert.Contains(t, th.Class(theme.Page), "bg-slate-950")
	})

	t.Run("resolved themes are cached", func(t *testing.T) {
		t.Parallel()
		a, err := reg.Resolve("acme", "dark")
		require.NoError(t, err)
		b, err := reg.Resolve("acme", "dark")
		require.NoError(t, err)
		assert.Same(t, a, b)
	})

	t.Run("unknown theme or variant", func(t *testing.T) {
		t.Parallel()
		_, err := reg.Resolve("missing", "")
		assert.ErrorIs(t, err, theme.ErrThemeNotFound)
		_, err = reg.Resolve("acme", "sepia")
		assert.ErrorIs(t, err, theme.ErrVariantNotFound)
	})
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	reg := theme.NewRegistry()
	require.NoError(t, reg.Register(&gotheme.Manifest{Name: "one", Version: "1.0.0"}))
	assert.ErrorIs(t, reg.Register(&gotheme.Manifest{Name: "one", Version: "1.0.0"}), theme.ErrDuplicateTheme)
	assert.ErrorIs(t, reg.Register(&gotheme.Manifest{}), theme.ErrInvalidManifest)
	assert.ErrorIs(t, reg.Register(nil), theme.ErrInvalidManifest)
	require.NoError(t, reg.Register(&gotheme.Manifest{Name: "alpha", Version: "2.0.0"}))
	assert.Equal(t, []string{"alpha", "one"}, reg.Names())
}

func TestTheme_Immutable(t *testing.T) {
	t.Parallel()

	th, err := newAcme(t).Resolve("acme", "")
	require.NoError(t, err)

	tokens := th.Tokens()
	tokens["brand"] = "#000000"
	assert.Equal(t, "#123456", th.Token("brand"))

	vars := th.CSSVars()
	vars["--brand"] = "#000000"
	assert.Equal(t, "#123456", th.CSSVars()["--brand"])
}

func TestTheme_Styles(t *testing.T) {
	t.Parallel()

	th, err := newAcme(t).Resolve("acme", "")
	require.NoError(t, err)

	assert.Equal(t, "custom-card", th.Class(theme.Card))
	assert.Contains(t, th.Class(theme.ButtonPrimary), "bg-[var(--brand)]")
	assert.Equal(t, th.Class(theme.InputInvalid), th.ClassIf(true, theme.InputInvalid, theme.Input))
	assert.Equal(t, th.Class(theme.Input), th.ClassIf(false, theme.InputInvalid, theme.Input))
	assert.Empty(t, th.Class(theme.Element("unknown")))

	_, hasClassVar := th.CSSVars()["--class.card"]
	assert.False(t, hasClassVar)
	assert.Equal(t, "--brand: #123456;", th.CSSVarsStyle())
}

func TestTheme_RendererConfig(t *testing.T) {
	t.Parallel()

	th, err := newAcme(t).Resolve("acme", "dark")
	require.NoError(t, err)

	cfg := th.RendererConfig()
	assert.Equal(t, "acme", cfg.Theme)
	assert.Equal(t, "dark", cfg.Variant)
	assert.Equal(t, "#654321", cfg.CSSVars["--brand"])
	require.NotNil(t, cfg.AssetURL)
	assert.Equal(t, "/assets/themes/acme/theme.css", cfg.AssetURL(theme.AssetStylesheet))
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := theme.MustDefaultRegistry()
	assert.Equal(t, []string{"landkit", "ledger"}, reg.Names())

	ledger, err := reg.Resolve("ledger", "")
	require.NoError(t, err)
	assert.Equal(t, theme.ModeDark, ledger.Mode())
	assert.Equal(t, "/static/themes/ledger/animate.js", ledger.AssetURL(theme.AssetScript))

	light, err := reg.Resolve("ledger", "light")
	require.NoError(t, err)
	assert.Equal(t, theme.ModeLight, light.Mode())
}
