// Package element is the declarative rendering backend: modules produce a
// small tree of renderable nodes, and the surface composes the nodes into
// the bar's visible frame. Node width is always measured from the exact
// string the node renders, so measure and paint cannot drift apart.
package element

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/drake/plank/bar"
	"github.com/drake/plank/theme"
)

// Element is a renderable node in the declarative backend.
type Element interface {
	// Render returns the styled string for this node.
	Render(th theme.Theme) string

	// Width returns the visible width Render occupies, ANSI excluded.
	Width(th theme.Theme) int
}

// Module is a bar module that targets the element backend.
type Module interface {
	bar.Module

	// Render builds the module's element for its current display state.
	// It must not mutate state; two renders with no intervening Update
	// produce identical output.
	Render(th theme.Theme) Element
}

// Text is a plain node drawn in the theme's text style.
func Text(s string) Element {
	return textNode{s: s}
}

// Styled is a text node with an explicit style.
func Styled(s string, style lipgloss.Style) Element {
	return textNode{s: s, style: &style}
}

type textNode struct {
	s     string
	style *lipgloss.Style
}

func (n textNode) Render(th theme.Theme) string {
	if n.style != nil {
		return n.style.Render(n.s)
	}
	return th.Text.Render(n.s)
}

func (n textNode) Width(th theme.Theme) int {
	return ansi.StringWidth(n.Render(th))
}

// Row joins children horizontally.
func Row(children ...Element) Element {
	return rowNode(children)
}

type rowNode []Element

func (n rowNode) Render(th theme.Theme) string {
	var sb strings.Builder
	for _, c := range n {
		sb.WriteString(c.Render(th))
	}
	return sb.String()
}

func (n rowNode) Width(th theme.Theme) int {
	w := 0
	for _, c := range n {
		w += c.Width(th)
	}
	return w
}

// Gap is a fixed-width blank spacer.
func Gap(width int) Element {
	if width < 0 {
		width = 0
	}
	return gapNode(width)
}

type gapNode int

func (n gapNode) Render(theme.Theme) string { return strings.Repeat(" ", int(n)) }
func (n gapNode) Width(theme.Theme) int     { return int(n) }

// Rule is a horizontal run of line glyphs in the muted label style.
func Rule(width int) Element {
	if width < 0 {
		width = 0
	}
	return ruleNode(width)
}

type ruleNode int

func (n ruleNode) Render(th theme.Theme) string {
	return th.Label.Render(strings.Repeat("─", int(n)))
}

func (n ruleNode) Width(th theme.Theme) int { return int(n) }

// Skeleton is the shared loading placeholder box.
func Skeleton(width int) Element {
	if width < 1 {
		width = 1
	}
	return skeletonNode(width)
}

type skeletonNode int

func (n skeletonNode) Render(th theme.Theme) string {
	return th.Loading.Render(strings.Repeat("░", int(n)))
}

func (n skeletonNode) Width(th theme.Theme) int { return int(n) }
