package canvas

import (
	"github.com/drake/plank/bar"
	"github.com/drake/plank/theme"
)

// placeholderWidth is the standard skeleton size policy for this surface.
const placeholderWidth = 8

// Compile-time check that Surface implements bar.Surface.
var _ bar.Surface = (*Surface)(nil)

// Module is a bar module that targets the canvas backend.
type Module interface {
	bar.Module

	// Draw paints the module's current display state into bounds on the
	// canvas. It must not mutate state; drawing is idempotent for the
	// same state.
	Draw(c *Canvas, b bar.Bounds)
}

// Surface adapts a Canvas to the bar's render pipeline. A fresh canvas is
// allocated per render pass.
type Surface struct {
	theme  theme.Theme
	canvas *Canvas
}

// NewSurface creates a canvas surface rendering with the given theme.
func NewSurface(th theme.Theme) *Surface {
	return &Surface{theme: th, canvas: New(0, 0)}
}

// Theme returns the surface's read-only theme.
func (s *Surface) Theme() theme.Theme { return s.theme }

// Canvas returns the canvas painted by the most recent render pass.
func (s *Surface) Canvas() *Canvas { return s.canvas }

// Begin implements bar.Surface.
func (s *Surface) Begin(width, height int) {
	s.canvas = New(width, height)
}

// Supports implements bar.Surface.
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
	s.canvas.Fill(b, '░', &s.theme.Loading)
}

// Draw implements bar.Surface. Supports is checked at registration, so the
// assertion here cannot fail for modules that reached the pipeline.
func (s *Surface) Draw(m bar.Module, b bar.Bounds) {
	m.(Module).Draw(s.canvas, b)
}

// View returns the flattened frame from the most recent render pass.
func (s *Surface) View() string {
	return s.canvas.View()
}
