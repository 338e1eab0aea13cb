package config

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/drake/plank/bar"
	"github.com/drake/plank/internal/clock"
	"github.com/drake/plank/modules"
)

// Factory builds a module from its config entry.
type Factory func(id string, mc ModuleConfig, clk clock.Clock) (bar.Module, error)

// Entry is a built module together with its refresh policy. A zero
// interval means the module never ticks (static content).
type Entry struct {
	Module   bar.Module
	Interval time.Duration
}

var (
	factoriesMu sync.Mutex
	factories   = map[string]Factory{}
)

// RegisterFactory makes a module type available to Build. Later
// registrations replace earlier ones, so hosts can override builtins.
func RegisterFactory(moduleType string, f Factory) {
	factoriesMu.Lock()
	factories[moduleType] = f
	factoriesMu.Unlock()
}

// RegisteredTypes returns the known module type names.
func RegisteredTypes() []string {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	types := make([]string, 0, len(factories))
	for t := range factories {
		types = append(types, t)
	}
	return types
}

func lookupFactory(moduleType string) (Factory, bool) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	f, ok := factories[moduleType]
	return f, ok
}

// defaultIntervals carries the per-type refresh cadence used when the
// config entry does not set one.
var defaultIntervals = map[string]time.Duration{
	"clock":  time.Second,
	"date":   time.Minute,
	"demo":   time.Second,
	"script": time.Second,
	"lua":    time.Second,
}

func init() {
	RegisterFactory("clock", func(id string, mc ModuleConfig, clk clock.Clock) (bar.Module, error) {
		return modules.NewClock(id, mc.Format, clk), nil
	})
	RegisterFactory("date", func(id string, mc ModuleConfig, clk clock.Clock) (bar.Module, error) {
		return modules.NewDate(id, mc.Format, clk), nil
	})
	RegisterFactory("static", func(id string, mc ModuleConfig, _ clock.Clock) (bar.Module, error) {
		return modules.NewStatic(id, mc.Text, mc.Icon), nil
	})
	RegisterFactory("demo", func(id string, _ ModuleConfig, _ clock.Clock) (bar.Module, error) {
		return modules.NewDemo(id), nil
	})
	RegisterFactory("skeleton", func(id string, _ ModuleConfig, _ clock.Clock) (bar.Module, error) {
		return modules.NewSkeleton(id), nil
	})
	RegisterFactory("separator", func(id string, mc ModuleConfig, _ clock.Clock) (bar.Module, error) {
		kind := modules.SeparatorSpace
		if mc.Line {
			kind = modules.SeparatorLine
		}
		return modules.NewSeparator(id, kind, mc.Width), nil
	})
	RegisterFactory("script", func(id string, mc ModuleConfig, clk clock.Clock) (bar.Module, error) {
		if mc.Command == "" {
			return nil, errors.Newf("script module %q: command is required", id)
		}
		return modules.NewScript(id, mc.Command, time.Duration(mc.Interval)*time.Second, clk), nil
	})
	RegisterFactory("lua", func(id string, mc ModuleConfig, _ clock.Clock) (bar.Module, error) {
		if mc.Chunk == "" {
			return nil, errors.Newf("lua module %q: chunk is required", id)
		}
		return modules.NewLua(id, mc.Chunk)
	})
}

// Build constructs every configured module in order. The module ID
// defaults to the type name when the entry does not set one; identity
// uniqueness is enforced by bar.Add at registration.
func Build(cfg *Config, clk clock.Clock) ([]Entry, error) {
	entries := make([]Entry, 0, len(cfg.Modules))
	for _, mc := range cfg.Modules {
		f, ok := lookupFactory(mc.Type)
		if !ok {
			return nil, errors.Newf("unknown module type %q", mc.Type)
		}

		id := mc.ID
		if id == "" {
			id = mc.Type
		}

		m, err := f(id, mc, clk)
		if err != nil {
			return nil, err
		}

		interval := time.Duration(mc.Interval) * time.Second
		if mc.Interval == 0 {
			interval = defaultIntervals[mc.Type]
		}
		entries = append(entries, Entry{Module: m, Interval: interval})
	}
	return entries, nil
}
