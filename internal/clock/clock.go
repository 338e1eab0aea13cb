// Package clock is the time source seam shared by the scheduler and
// time-based modules, so tests can drive them against a controlled clock.
package clock

import (
	"sync"
	"time"
)

// Clock supplies the current time and blocking sleeps.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// System returns the real wall clock.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Fake is a manually advanced clock for tests. Sleep does not block;
// it advances the fake time by the requested duration.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake creates a fake clock frozen at the given instant.
func NewFake(at time.Time) *Fake {
	return &Fake{now: at}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) Sleep(d time.Duration) {
	f.Advance(d)
}

// Advance moves the fake time forward.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

// Set jumps the fake time to an absolute instant.
func (f *Fake) Set(at time.Time) {
	f.mu.Lock()
	f.now = at
	f.mu.Unlock()
}
