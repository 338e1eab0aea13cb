package bar

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/drake/plank/internal/clock"
)

// Scheduler ticks modules at their configured intervals, off the render
// path. Each module gets its own goroutine; timers are independent and
// uncoordinated, so dirty signals arrive staggered and the bar tolerates
// partial redraw requests.
//
// Ticks are fixed-delay, not fixed-rate: a firing runs Update once and then
// sleeps the full interval, so a slow update pushes back the next firing.
// Status-bar content tolerates that drift.
type Scheduler struct {
	bar    *Bar
	clock  clock.Clock
	logger *zap.Logger

	mu      sync.Mutex
	entries map[string]*atomic.Bool
	wg      sync.WaitGroup
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithClock replaces the system clock, mainly for tests.
func WithClock(c clock.Clock) SchedulerOption {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithSchedulerLogger sets the structured logger. The default is a nop
// logger.
func WithSchedulerLogger(l *zap.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewScheduler creates a scheduler driving the given bar's modules.
func NewScheduler(b *Bar, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		bar:     b,
		clock:   clock.System(),
		logger:  zap.NewNop(),
		entries: make(map[string]*atomic.Bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins ticking the named module every interval. The module must
// already be registered with the bar, and at most one tick loop may exist
// per module.
func (s *Scheduler) Start(id string, interval time.Duration) error {
	if interval <= 0 {
		return errors.Newf("scheduler: non-positive interval for module %q", id)
	}

	s.bar.mu.RLock()
	sl, ok := s.bar.byID[id]
	s.bar.mu.RUnlock()
	if !ok {
		return errors.Newf("scheduler: module %q is not registered", id)
	}

	s.mu.Lock()
	if _, exists := s.entries[id]; exists {
		s.mu.Unlock()
		return errors.Newf("scheduler: module %q is already scheduled", id)
	}
	stop := atomic.NewBool(false)
	s.entries[id] = stop
	s.mu.Unlock()

	s.logger.Info("module scheduled",
		zap.String("module", id),
		zap.Duration("interval", interval),
	)

	s.wg.Add(1)
	go s.run(sl, stop, interval)
	return nil
}

// sleepGranule bounds how long a tick loop sleeps before rechecking its
// stop flag, so cancellation latency stays small even for long intervals.
const sleepGranule = 25 * time.Millisecond

// run is the per-module tick loop. Cancellation is cooperative: the flag is
// checked at the top of each iteration and between sleep granules, so stop
// latency is at most one Update call plus one granule.
func (s *Scheduler) run(sl *slot, stop *atomic.Bool, interval time.Duration) {
	defer s.wg.Done()
	for !stop.Load() {
		if sl.update() {
			s.bar.Invalidate()
		}
		s.sleep(stop, interval)
	}
}

// sleep waits out one fixed-delay interval in granules, bailing early when
// the stop flag is set.
func (s *Scheduler) sleep(stop *atomic.Bool, interval time.Duration) {
	deadline := s.clock.Now().Add(interval)
	for !stop.Load() {
		remaining := deadline.Sub(s.clock.Now())
		if remaining <= 0 {
			return
		}
		if remaining > sleepGranule {
			remaining = sleepGranule
		}
		s.clock.Sleep(remaining)
	}
}

// Stop cancels the named module's tick loop. The in-flight update, if any,
// finishes; it is never interrupted.
func (s *Scheduler) Stop(id string) {
	s.mu.Lock()
	stop, ok := s.entries[id]
	if ok {
		delete(s.entries, id)
	}
	s.mu.Unlock()

	if ok {
		stop.Store(true)
		s.logger.Info("module tick stopped", zap.String("module", id))
	}
}

// StopAll cancels every tick loop and waits for the goroutines to drain.
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	for id, stop := range s.entries {
		stop.Store(true)
		delete(s.entries, id)
	}
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}
