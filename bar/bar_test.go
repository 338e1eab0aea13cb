package bar_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drake/plank/bar"
)

// fakeSurface records every pipeline operation so tests can assert on the
// exact paint sequence.
type fakeSurface struct {
	mu        sync.Mutex
	begins    int
	draws     []string // module IDs, in paint order
	skeletons []bar.Bounds
	reject    map[string]bool // module IDs Supports refuses
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{reject: make(map[string]bool)}
}

func (f *fakeSurface) Supports(m bar.Module) bool {
	return !f.reject[m.ID()]
}

func (f *fakeSurface) Begin(_, _ int) {
	f.mu.Lock()
	f.begins++
	f.draws = f.draws[:0]
	f.skeletons = f.skeletons[:0]
	f.mu.Unlock()
}

func (f *fakeSurface) PlaceholderSize() bar.Size {
	return bar.Size{Width: 8, Height: 1}
}

func (f *fakeSurface) DrawSkeleton(b bar.Bounds) {
	f.mu.Lock()
	f.skeletons = append(f.skeletons, b)
	f.mu.Unlock()
}

func (f *fakeSurface) Draw(m bar.Module, _ bar.Bounds) {
	f.mu.Lock()
	f.draws = append(f.draws, m.ID())
	f.mu.Unlock()
}

func (f *fakeSurface) drawOrder() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.draws...)
}

// fakeModule is a scriptable module for core tests.
type fakeModule struct {
	id      string
	size    bar.Size
	loading bool
	changed bool // Update return value

	mu      sync.Mutex
	updates int
}

func (m *fakeModule) ID() string { return m.id }

func (m *fakeModule) Measure() bar.Size { return m.size }

func (m *fakeModule) Update() bool {
	m.mu.Lock()
	m.updates++
	m.mu.Unlock()
	return m.changed
}

func (m *fakeModule) IsLoading() bool { return m.loading }

func (m *fakeModule) updateCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updates
}

func newFake(id string) *fakeModule {
	return &fakeModule{id: id, size: bar.Size{Width: 5, Height: 1}}
}

func TestAddRejectsDuplicateIdentity(t *testing.T) {
	surface := newFakeSurface()
	b := bar.New(surface)

	require.NoError(t, b.Add(newFake("clock")))

	err := b.Add(newFake("clock"))
	require.Error(t, err)
	require.Contains(t, err.Error(), `"clock"`)
	require.Equal(t, 1, b.Len())

	// The rejection happens at registration; no render pass sees it.
	require.Equal(t, 0, surface.begins)
}

func TestAddRejectsBackendMismatch(t *testing.T) {
	surface := newFakeSurface()
	surface.reject["alien"] = true
	b := bar.New(surface)

	err := b.Add(newFake("alien"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not target")
	require.Equal(t, 0, b.Len())
}

func TestRenderPassPaintsInDisplayOrder(t *testing.T) {
	surface := newFakeSurface()
	b := bar.New(surface)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, b.Add(newFake(id)))
	}

	b.RenderPass(80, 1)
	require.Equal(t, []string{"a", "b", "c"}, surface.drawOrder())
}

func TestDirtyAggregation(t *testing.T) {
	surface := newFakeSurface()
	b := bar.New(surface)

	changing := newFake("changing")
	changing.changed = true
	static := newFake("static")

	require.NoError(t, b.Add(changing))
	require.NoError(t, b.Add(static))

	// Registration dirties the bar; a pass clears it.
	require.True(t, b.Dirty())
	b.RenderPass(80, 1)
	require.False(t, b.Dirty())

	// One changed module is enough to request a full-bar repaint.
	if changing.Update() {
		b.Invalidate()
	}
	require.True(t, b.Dirty())

	b.RenderPass(80, 1)
	require.False(t, b.Dirty())

	// An unchanged module never dirties the bar.
	if static.Update() {
		b.Invalidate()
	}
	require.False(t, b.Dirty())
}

func TestLoadingModuleGetsSkeletonNotDraw(t *testing.T) {
	surface := newFakeSurface()
	b := bar.New(surface)

	loading := newFake("loading")
	loading.loading = true
	require.NoError(t, b.Add(loading))
	require.NoError(t, b.Add(newFake("normal")))

	b.RenderPass(80, 1)

	require.Equal(t, []string{"normal"}, surface.drawOrder())
	require.Len(t, surface.skeletons, 1)
	// Loading modules are sized by the surface's placeholder policy.
	require.Equal(t, 8, surface.skeletons[0].Width)
}

func TestPermanentSkeletonStableAcrossTicks(t *testing.T) {
	surface := newFakeSurface()
	b := bar.New(surface)

	loading := newFake("loading")
	loading.loading = true
	loading.changed = false
	require.NoError(t, b.Add(loading))

	b.RenderPass(80, 1)
	first := append([]bar.Bounds(nil), surface.skeletons...)

	// Tick it any number of times; the painted output never moves.
	for i := 0; i < 10; i++ {
		loading.Update()
		b.RenderPass(80, 1)
		require.Equal(t, first, surface.skeletons)
		require.Empty(t, surface.drawOrder())
	}
	require.Equal(t, 11, loading.updateCount())
}

func TestRenderPassIsIdempotent(t *testing.T) {
	surface := newFakeSurface()
	b := bar.New(surface)

	require.NoError(t, b.Add(newFake("a")))
	require.NoError(t, b.Add(newFake("b")))

	b.RenderPass(80, 1)
	first := surface.drawOrder()
	firstSkel := append([]bar.Bounds(nil), surface.skeletons...)

	// No intervening Update: the second pass paints identically.
	b.RenderPass(80, 1)
	require.Equal(t, first, surface.drawOrder())
	require.Equal(t, firstSkel, surface.skeletons)
}

func TestClickRoutedToClicker(t *testing.T) {
	surface := newFakeSurface()
	b := bar.New(surface)

	c := &clickable{fakeModule: fakeModule{id: "btn", size: bar.Size{Width: 5, Height: 1}}}
	require.NoError(t, b.Add(c))

	b.Click("btn")
	b.Click("missing") // unknown IDs are ignored
	require.Equal(t, 1, c.clicks)
}

type clickable struct {
	fakeModule
	clicks int
}

func (c *clickable) Click() { c.clicks++ }
