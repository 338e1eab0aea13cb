// Package theme holds the read-only style input handed to every module
// render. It is owned by the host; the bar core only threads it through.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette — muted terminal colors in the 256-color range.
const (
	ColorText     lipgloss.Color = "252"
	ColorMuted    lipgloss.Color = "243"
	ColorAccent   lipgloss.Color = "212"
	ColorWarning  lipgloss.Color = "179"
	ColorSkeleton lipgloss.Color = "238"
)

// Theme supplies the colors and styles modules render with. Modules must
// treat it as immutable; a new Theme is built when the host reconfigures.
type Theme struct {
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Skeleton   lipgloss.Color

	// Height is the bar strip height in rows.
	Height int

	Text    lipgloss.Style
	Label   lipgloss.Style
	Loading lipgloss.Style
}

// Default returns the stock single-row theme.
func Default() Theme {
	return Theme{
		Foreground: ColorText,
		Accent:     ColorAccent,
		Muted:      ColorMuted,
		Skeleton:   ColorSkeleton,
		Height:     1,
		Text:       lipgloss.NewStyle().Foreground(ColorText),
		Label:      lipgloss.NewStyle().Foreground(ColorMuted),
		Loading:    lipgloss.NewStyle().Foreground(ColorSkeleton),
	}
}

// WithForeground returns a copy themed around the given foreground color.
func (t Theme) WithForeground(c lipgloss.Color) Theme {
	t.Foreground = c
	t.Text = t.Text.Foreground(c)
	return t
}

// WithAccent returns a copy with the accent color replaced.
func (t Theme) WithAccent(c lipgloss.Color) Theme {
	t.Accent = c
	return t
}
