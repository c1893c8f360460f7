// Package theme resolves site themes into immutable values used by the view
// layer.
//
// Themes are described by go-theme manifests, usually loaded from YAML. A
// manifest carries design tokens, asset files and named variants. Resolving a
// theme merges the selected variant over the base manifest and produces a
// *Theme that never changes afterwards:
//
//	reg := theme.MustDefaultRegistry()
//	th, err := reg.Resolve("ledger", "dark")
//	if err != nil {
//		return err
//	}
//	btn := th.Class(theme.ButtonPrimary)
//
// Conditional styling goes through the typed Element enumeration and a
// per-mode lookup table instead of ad hoc class strings. A manifest can
// override a single element with a token named "class.<element>".
package theme
