package bar

import (
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// slot pairs a module with the lock that serializes its scheduler tick
// (the one writer of display state) against render-pass reads.
type slot struct {
	module Module
	mu     sync.Mutex
}

func (s *slot) update() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.module.Update()
}

// Bar owns the ordered module collection, aggregates dirty state from the
// scheduler, and drives the render pipeline over each module in display
// order.
type Bar struct {
	surface  Surface
	pipeline *Pipeline
	layout   Layout
	logger   *zap.Logger

	mu    sync.RWMutex
	slots []*slot
	byID  map[string]*slot

	dirty atomic.Bool
}

// Option configures a Bar.
type Option func(*Bar)

// WithLayout replaces the default left-pack layout.
func WithLayout(l Layout) Option {
	return func(b *Bar) {
		if l != nil {
			b.layout = l
		}
	}
}

// WithLogger sets the structured logger. The default is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bar) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates an empty bar rendering onto the given surface.
func New(surface Surface, opts ...Option) *Bar {
	b := &Bar{
		surface:  surface,
		pipeline: NewPipeline(surface),
		layout:   LeftPack(1),
		logger:   zap.NewNop(),
		byID:     make(map[string]*slot),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add registers a module at the end of the display order. Duplicate
// identities and modules built for another surface are configuration
// errors, rejected here so no render pass ever sees them.
func (b *Bar) Add(m Module) error {
	id := m.ID()

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.byID[id]; exists {
		return errors.Newf("bar: module %q already registered", id)
	}
	if !b.surface.Supports(m) {
		return errors.Newf("bar: module %q does not target this surface", id)
	}

	s := &slot{module: m}
	b.slots = append(b.slots, s)
	b.byID[id] = s
	b.dirty.Store(true)

	b.logger.Info("module registered", zap.String("module", id))
	return nil
}

// Invalidate marks the bar dirty so the host schedules a repaint. A single
// changed module is enough to repaint the whole strip.
func (b *Bar) Invalidate() {
	b.dirty.Store(true)
}

// Dirty reports whether any module changed since the last render pass. The
// bar never initiates repaints itself; the host polls this to decide.
func (b *Bar) Dirty() bool {
	return b.dirty.Load()
}

// Len returns the number of registered modules.
func (b *Bar) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.slots)
}

// Click forwards a host click event to the named module, if it accepts
// clicks. The change becomes visible on the module's next Update.
func (b *Bar) Click(id string) {
	b.mu.RLock()
	s, ok := b.byID[id]
	b.mu.RUnlock()
	if !ok {
		return
	}
	if c, ok := s.module.(Clicker); ok {
		c.Click()
	}
}

// RenderPass runs one full measure+draw cycle over all modules in display
// order, producing the bar's visible frame on the surface. Each module's
// slot lock is held across its measure and draw so a concurrent tick can
// never tear the state between the two, and measure results are never
// reused across an intervening update.
func (b *Bar) RenderPass(width, height int) {
	b.mu.RLock()
	slots := make([]*slot, len(b.slots))
	copy(slots, b.slots)
	b.mu.RUnlock()

	// Changes landing after this point re-dirty the bar for the next pass.
	b.dirty.Store(false)

	for _, s := range slots {
		s.mu.Lock()
	}
	defer func() {
		for _, s := range slots {
			s.mu.Unlock()
		}
	}()

	b.surface.Begin(width, height)

	sizes := make([]Size, len(slots))
	for i, s := range slots {
		sizes[i] = b.pipeline.Measure(s.module)
	}

	bounds := b.layout(sizes, width, height)
	for i, s := range slots {
		b.pipeline.Render(s.module, bounds[i])
	}
}
