// Package templates renders email bodies to strings.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Render renders a templ component into a string.
func Render(ctx context.Context, tpl templ.Component) (string, error) {
	var sb strings.Builder
	if err := tpl.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Node adapts a gomponents node to templ.Component.
func Node(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// RenderNode renders a gomponents node into a string.
func RenderNode(ctx context.Context, n g.Node) (string, error) {
	return Render(ctx, Node(n))
}
