// Package modules provides the built-in element-backend bar modules. Each
// module is a self-contained unit: it owns its display state exclusively,
// advances it only in Update, and renders it without mutation.
package modules

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/drake/plank/bar"
	"github.com/drake/plank/element"
	"github.com/drake/plank/internal/clock"
	"github.com/drake/plank/theme"
)

// DefaultClockFormat is the stock clock layout.
const DefaultClockFormat = "Mon Jan 02  15:04:05"

// Clock shows the current time in a fixed Go reference-time format. The
// formatted text is cached; Update reformats and compares strings, so a
// format without seconds reports no change while only seconds advance.
type Clock struct {
	id     string
	format string
	clk    clock.Clock
	text   string
}

// NewClock creates a clock module reading time from clk.
func NewClock(id, format string, clk clock.Clock) *Clock {
	if format == "" {
		format = DefaultClockFormat
	}
	return &Clock{
		id:     id,
		format: format,
		clk:    clk,
		text:   clk.Now().Format(format),
	}
}

func (c *Clock) ID() string { return c.id }

func (c *Clock) Measure() bar.Size {
	return bar.Size{Width: ansi.StringWidth(c.text), Height: 1}
}

func (c *Clock) Update() bool {
	next := c.clk.Now().Format(c.format)
	if next == c.text {
		return false
	}
	c.text = next
	return true
}

func (c *Clock) IsLoading() bool { return false }

func (c *Clock) Render(th theme.Theme) element.Element {
	return element.Styled(c.text, th.Text)
}
