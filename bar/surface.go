package bar

// Surface is a rendering backend the pipeline paints modules onto. Two
// implementations exist: the declarative element surface and the
// immediate-mode canvas surface. A surface only accepts modules built for
// it; Supports is checked once at registration so a backend mismatch is a
// configuration error, never a paint-time failure.
type Surface interface {
	// Supports reports whether the module targets this surface.
	Supports(m Module) bool

	// Begin resets the surface for a new render pass of the given size.
	Begin(width, height int)

	// PlaceholderSize is the standard size policy for loading modules,
	// independent of any module's own Measure.
	PlaceholderSize() Size

	// DrawSkeleton paints the shared loading placeholder into bounds.
	DrawSkeleton(b Bounds)

	// Draw paints the module's current display state into bounds.
	Draw(m Module, b Bounds)
}
