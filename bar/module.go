// Package bar is the status-bar core: the module contract, the per-module
// tick scheduler, the skeleton-vs-content render pipeline, and the registry
// that owns module order and dirty state. Rendering backends live in the
// element and canvas packages; this package is agnostic to both.
package bar

// Size is a measured width/height pair in terminal cells. Sizes are
// recomputed every render pass and never persisted; content width can
// change between ticks.
type Size struct {
	Width  int
	Height int
}

// Bounds is the rectangle a module is given to draw into. Bounds are
// assigned by the host layout; a module only ever reports its desired
// size, never its position.
type Bounds struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Module is the contract every bar item implements. Rendering is not part
// of this interface: a module additionally implements exactly one backend's
// render interface (element.Module or canvas.Module), decided at
// construction.
type Module interface {
	// ID returns the module's stable identity. It never changes after
	// construction and distinguishes the module among siblings.
	ID() string

	// Measure returns the space the module currently wants, based on its
	// current display state. It must not mutate state and must agree with
	// what a subsequent render of the same state paints.
	Measure() Size

	// Update advances internal state to the present moment and reports
	// whether the visible state changed. Unchanged content must return
	// false so the bar can skip repaints. Update has no error channel:
	// a module that cannot refresh reports unchanged state or enters the
	// loading state instead.
	Update() bool

	// IsLoading reports whether the module currently lacks real content.
	// While true the pipeline paints the shared skeleton placeholder and
	// never calls the module's own render.
	IsLoading() bool
}

// Clicker is implemented by modules that react to a host click event.
type Clicker interface {
	Click()
}
