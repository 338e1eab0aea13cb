package modules

import (
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/drake/plank/bar"
	"github.com/drake/plank/element"
	"github.com/drake/plank/internal/clock"
	"github.com/drake/plank/theme"
)

// DefaultScriptInterval is how often a script reruns when the config does
// not say otherwise.
const DefaultScriptInterval = 10 * time.Second

// runner executes a shell command and returns its stdout.
type runner func(command string) (string, error)

func shellRun(command string) (string, error) {
	out, err := exec.Command("/bin/sh", "-c", command).Output()
	return string(out), err
}

// Script shows the first output line of a shell command, rerun on its own
// cadence. Until the first sample arrives the module reports loading, so
// the bar paints the skeleton instead of empty text. A failed run keeps
// the previous output and reports no change; there is no error channel.
type Script struct {
	id       string
	command  string
	interval time.Duration
	clk      clock.Clock
	run      runner

	sampled bool
	lastRun time.Time
	output  string
}

// NewScript creates a script module for a /bin/sh command line.
func NewScript(id, command string, interval time.Duration, clk clock.Clock) *Script {
	if interval <= 0 {
		interval = DefaultScriptInterval
	}
	return &Script{
		id:       id,
		command:  command,
		interval: interval,
		clk:      clk,
		run:      shellRun,
	}
}

func (s *Script) ID() string { return s.id }

func (s *Script) Measure() bar.Size {
	return bar.Size{Width: ansi.StringWidth(s.output), Height: 1}
}

func (s *Script) IsLoading() bool { return !s.sampled }

func (s *Script) Update() bool {
	if s.sampled && s.clk.Now().Sub(s.lastRun) < s.interval {
		return false
	}

	out, err := s.run(s.command)
	s.lastRun = s.clk.Now()
	if err != nil {
		// Stale output beats an error; the contract has no failure path.
		return false
	}

	out = firstLine(out)
	if s.sampled && out == s.output {
		return false
	}
	s.sampled = true
	s.output = out
	return true
}

func (s *Script) Render(th theme.Theme) element.Element {
	return element.Styled(s.output, th.Text)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
