package modules

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/drake/plank/bar"
	"github.com/drake/plank/element"
	"github.com/drake/plank/theme"
)

// Static shows fixed text with an optional leading icon glyph. Its state
// never changes, so Update always reports no change.
type Static struct {
	id   string
	text string
	icon string
}

// NewStatic creates a static text module.
func NewStatic(id, text, icon string) *Static {
	return &Static{id: id, text: text, icon: icon}
}

func (s *Static) ID() string { return s.id }

func (s *Static) display() string {
	if s.icon == "" {
		return s.text
	}
	if s.text == "" {
		return s.icon
	}
	return s.icon + " " + s.text
}

func (s *Static) Measure() bar.Size {
	return bar.Size{Width: ansi.StringWidth(s.display()), Height: 1}
}

func (s *Static) Update() bool    { return false }
func (s *Static) IsLoading() bool { return false }

func (s *Static) Render(th theme.Theme) element.Element {
	if s.icon == "" {
		return element.Styled(s.text, th.Text)
	}
	if s.text == "" {
		return element.Styled(s.icon, th.Label)
	}
	return element.Row(
		element.Styled(s.icon, th.Label),
		element.Gap(1),
		element.Styled(s.text, th.Text),
	)
}
