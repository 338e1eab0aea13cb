package element

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/drake/plank/theme"
)

func TestWidthMatchesRenderedWidth(t *testing.T) {
	th := theme.Default()

	cases := []struct {
		name string
		el   Element
	}{
		{"text", Text("hello")},
		{"styled", Styled("12:34", lipgloss.NewStyle().Foreground(lipgloss.Color("212")))},
		{"gap", Gap(4)},
		{"rule", Rule(6)},
		{"skeleton", Skeleton(8)},
		{"row", Row(Text("a"), Gap(2), Text("bc"))},
		{"wide runes", Text("時計")},
		{"empty row", Row()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rendered := tc.el.Render(th)
			require.Equal(t, ansi.StringWidth(rendered), tc.el.Width(th))
		})
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	th := theme.Default()
	el := Row(Text("cpu"), Gap(1), Styled("42%", th.Label))

	first := el.Render(th)
	second := el.Render(th)
	require.Equal(t, first, second)
}

func TestRowWidthIsSumOfChildren(t *testing.T) {
	th := theme.Default()
	row := Row(Text("ab"), Gap(3), Text("c"))
	require.Equal(t, 6, row.Width(th))
}

func TestSkeletonRendersPlaceholderGlyphs(t *testing.T) {
	th := theme.Default()
	out := Skeleton(5).Render(th)
	require.Equal(t, 5, strings.Count(out, "░"))
}

func TestGapClampsNegativeWidth(t *testing.T) {
	th := theme.Default()
	require.Equal(t, 0, Gap(-3).Width(th))
	require.Equal(t, "", Gap(-3).Render(th))
}
