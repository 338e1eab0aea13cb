package modules

import (
	"github.com/drake/plank/bar"
	"github.com/drake/plank/element"
	"github.com/drake/plank/theme"
)

// Skeleton is permanently loading. The pipeline always substitutes the
// shared placeholder for it, so its own Measure and Render are never
// reached; it exists to exercise the skeleton path in isolation.
type Skeleton struct {
	id string
}

// NewSkeleton creates a permanently loading module.
func NewSkeleton(id string) *Skeleton {
	return &Skeleton{id: id}
}

func (s *Skeleton) ID() string        { return s.id }
func (s *Skeleton) Measure() bar.Size { return bar.Size{} }
func (s *Skeleton) Update() bool      { return false }
func (s *Skeleton) IsLoading() bool   { return true }

func (s *Skeleton) Render(theme.Theme) element.Element {
	// Unreachable: IsLoading is always true.
	return element.Text("")
}
