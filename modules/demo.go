package modules

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"go.uber.org/atomic"

	"github.com/drake/plank/bar"
	"github.com/drake/plank/element"
	"github.com/drake/plank/theme"
)

// Demo is a click counter that showcases host-fed input. Clicks land in a
// pending counter from any goroutine; only Update folds them into the
// visible text, keeping display-state mutation inside the update path.
type Demo struct {
	id      string
	pending atomic.Int64
	clicks  int64
	text    string
}

// Compile-time check that Demo accepts clicks.
var _ bar.Clicker = (*Demo)(nil)

// NewDemo creates the demo module.
func NewDemo(id string) *Demo {
	return &Demo{id: id, text: "Demo"}
}

func (d *Demo) ID() string { return d.id }

// Click records a host click. Safe from any goroutine.
func (d *Demo) Click() {
	d.pending.Inc()
}

func (d *Demo) Measure() bar.Size {
	return bar.Size{Width: ansi.StringWidth(d.text), Height: 1}
}

func (d *Demo) Update() bool {
	n := d.pending.Swap(0)
	if n == 0 {
		return false
	}
	d.clicks += n
	d.text = fmt.Sprintf("Demo (%d)", d.clicks)
	return true
}

func (d *Demo) IsLoading() bool { return false }

func (d *Demo) Render(th theme.Theme) element.Element {
	return element.Styled(d.text, th.Text.Foreground(th.Accent))
}
