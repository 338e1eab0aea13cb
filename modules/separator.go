package modules

import (
	"github.com/drake/plank/bar"
	"github.com/drake/plank/element"
	"github.com/drake/plank/theme"
)

// SeparatorKind selects the separator glyphs.
type SeparatorKind int

const (
	// SeparatorSpace is an invisible gap.
	SeparatorSpace SeparatorKind = iota
	// SeparatorLine is a muted horizontal rule.
	SeparatorLine
)

// Separator is fixed-width visual spacing between neighboring modules.
type Separator struct {
	id    string
	kind  SeparatorKind
	width int
}

// NewSeparator creates a separator of the given kind and width.
func NewSeparator(id string, kind SeparatorKind, width int) *Separator {
	if width < 1 {
		width = 1
	}
	return &Separator{id: id, kind: kind, width: width}
}

func (s *Separator) ID() string { return s.id }

func (s *Separator) Measure() bar.Size {
	return bar.Size{Width: s.width, Height: 1}
}

func (s *Separator) Update() bool    { return false }
func (s *Separator) IsLoading() bool { return false }

func (s *Separator) Render(theme.Theme) element.Element {
	if s.kind == SeparatorLine {
		return element.Rule(s.width)
	}
	return element.Gap(s.width)
}
