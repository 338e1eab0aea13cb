package canvas

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/drake/plank/bar"
	"github.com/drake/plank/internal/clock"
)

// Label is a fixed-text module for the canvas backend. Its text never
// changes, so Update always reports no change.
type Label struct {
	id   string
	text string
}

// NewLabel creates a canvas label module.
func NewLabel(id, text string) *Label {
	return &Label{id: id, text: text}
}

func (l *Label) ID() string { return l.id }

func (l *Label) Measure() bar.Size {
	return bar.Size{Width: ansi.StringWidth(l.text), Height: 1}
}

func (l *Label) Update() bool    { return false }
func (l *Label) IsLoading() bool { return false }

// Draw centers the text horizontally within bounds.
func (l *Label) Draw(c *Canvas, b bar.Bounds) {
	drawCentered(c, b, l.text)
}

// Clock is a time-of-day module for the canvas backend. It caches the
// formatted text; Update reformats and compares, so ticks that do not
// change the visible string report no change.
type Clock struct {
	id     string
	format string
	clk    clock.Clock
	text   string
}

// NewClock creates a canvas clock with a Go reference-time format.
func NewClock(id, format string, clk clock.Clock) *Clock {
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

func (c *Clock) Draw(cv *Canvas, b bar.Bounds) {
	drawCentered(cv, b, c.text)
}

// drawCentered draws text centered within bounds, clipped to the bounds
// width.
func drawCentered(c *Canvas, b bar.Bounds, text string) {
	w := ansi.StringWidth(text)
	if w > b.Width {
		text = runewidth.Truncate(text, b.Width, "")
		w = b.Width
	}
	x := b.X + (b.Width-w)/2
	y := b.Y + (b.Height-1)/2
	c.DrawText(x, y, text, nil)
}
