package modules

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/drake/plank/bar"
	"github.com/drake/plank/element"
	"github.com/drake/plank/internal/clock"
	"github.com/drake/plank/theme"
)

// DefaultDateFormat is the stock date layout.
const DefaultDateFormat = "Mon Jan 02"

// Date shows the current date. Same mechanism as Clock, but the formatted
// string only changes at midnight, so nearly every tick reports no change.
type Date struct {
	id     string
	format string
	clk    clock.Clock
	text   string
}

// NewDate creates a date module reading time from clk.
func NewDate(id, format string, clk clock.Clock) *Date {
	if format == "" {
		format = DefaultDateFormat
	}
	return &Date{
		id:     id,
		format: format,
		clk:    clk,
		text:   clk.Now().Format(format),
	}
}

func (d *Date) ID() string { return d.id }

func (d *Date) Measure() bar.Size {
	return bar.Size{Width: ansi.StringWidth(d.text), Height: 1}
}

func (d *Date) Update() bool {
	next := d.clk.Now().Format(d.format)
	if next == d.text {
		return false
	}
	d.text = next
	return true
}

func (d *Date) IsLoading() bool { return false }

func (d *Date) Render(th theme.Theme) element.Element {
	return element.Styled(d.text, th.Text)
}
