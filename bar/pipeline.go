package bar

// Pipeline decides the skeleton-vs-content path for one surface and issues
// exactly one paint operation per module per render pass.
type Pipeline struct {
	surface Surface
}

// NewPipeline creates a pipeline targeting the given surface.
func NewPipeline(s Surface) *Pipeline {
	return &Pipeline{surface: s}
}

// Measure returns the space the module should be allotted this pass.
// Loading modules use the surface's placeholder size policy instead of
// their own Measure.
func (p *Pipeline) Measure(m Module) Size {
	if m.IsLoading() {
		return p.surface.PlaceholderSize()
	}
	return m.Measure()
}

// Render paints the module into its bounds. A loading module gets the
// shared skeleton; its own render is never invoked.
func (p *Pipeline) Render(m Module, b Bounds) {
	if m.IsLoading() {
		p.surface.DrawSkeleton(b)
		return
	}
	p.surface.Draw(m, b)
}
