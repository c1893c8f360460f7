// Package views renders the landing pages and the contact form with
// gomponents. Every component takes the resolved *theme.Theme and asks it for
// class lists, so markup never branches on theme names. Component adapts a
// node to templ.Component for handler responses and datastar patches.
package views
