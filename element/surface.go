package element

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/drake/plank/bar"
	"github.com/drake/plank/theme"
)

// placeholderWidth is the standard skeleton size policy for this surface.
const placeholderWidth = 8

// Compile-time check that Surface implements bar.Surface.
var _ bar.Surface = (*Surface)(nil)

// segment is one painted span within the current frame.
type segment struct {
	x int
	s string
}

// Surface composes element-module output into a single bar frame. The bar
// strip is one row; segments are placed by X and the gaps between them are
// padded with spaces.
type Surface struct {
	theme    theme.Theme
	width    int
	segments []segment
}

// NewSurface creates an element surface rendering with the given theme.
func NewSurface(th theme.Theme) *Surface {
	return &Surface{theme: th}
}

// Theme returns the surface's read-only theme.
func (s *Surface) Theme() theme.Theme { return s.theme }

// Begin implements bar.Surface.
func (s *Surface) Begin(width, _ int) {
	s.width = width
	s.segments = s.segments[:0]
}

// Supports implements bar.Surface. Only modules built for the element
// backend are accepted.
func (s *Surface) Supports(m bar.Module) bool {
	_, ok := m.(Module)
	return ok
}

// PlaceholderSize implements bar.Surface.
func (s *Surface) PlaceholderSize() bar.Size {
	return bar.Size{Width: placeholderWidth, Height: 1}
}

// DrawSkeleton implements bar.Surface.
func (s *Surface) DrawSkeleton(b bar.Bounds) {
	s.place(b, Skeleton(b.Width).Render(s.theme))
}

// Draw implements bar.Surface. Supports is checked at registration, so the
// assertion here cannot fail for modules that reached the pipeline.
func (s *Surface) Draw(m bar.Module, b bar.Bounds) {
	em := m.(Module)
	s.place(b, em.Render(s.theme).Render(s.theme))
}

func (s *Surface) place(b bar.Bounds, rendered string) {
	if b.Width <= 0 || b.X >= s.width {
		return
	}
	w := b.Width
	if b.X+w > s.width {
		w = s.width - b.X
	}
	s.segments = append(s.segments, segment{
		x: b.X,
		s: ansi.Truncate(rendered, w, ""),
	})
}

// Frame returns the composed bar line for the host, padded to the pass
// width.
func (s *Surface) Frame() string {
	var sb strings.Builder
	x := 0
	for _, seg := range s.segments {
		if seg.x > x {
			sb.WriteString(strings.Repeat(" ", seg.x-x))
			x = seg.x
		}
		sb.WriteString(seg.s)
		x += ansi.StringWidth(seg.s)
	}
	if x < s.width {
		sb.WriteString(strings.Repeat(" ", s.width-x))
	}
	return sb.String()
}
