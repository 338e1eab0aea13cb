package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/drake/plank/bar"
	"github.com/drake/plank/config"
	"github.com/drake/plank/element"
	"github.com/drake/plank/internal/clock"
	"github.com/drake/plank/theme"
)

// paintCadence is how often the host checks whether the bar is dirty. The
// bar never schedules repaints itself; module ticks only mark it dirty.
const paintCadence = 100 * time.Millisecond

type paintMsg struct{}

func paintTick() tea.Cmd {
	return tea.Tick(paintCadence, func(time.Time) tea.Msg {
		return paintMsg{}
	})
}

// model is the bubbletea host wrapping one bar strip.
type model struct {
	bar     *bar.Bar
	sched   *bar.Scheduler
	surface *element.Surface
	height  int
	width   int
	frame   string
}

func (m *model) Init() tea.Cmd {
	return paintTick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.repaint()
		return m, nil

	case paintMsg:
		if m.bar.Dirty() {
			m.repaint()
		}
		return m, paintTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.sched.StopAll()
			return m, tea.Quit
		case "d":
			// The demo module folds clicks in on its next tick.
			m.bar.Click("demo")
		}
		return m, nil
	}
	return m, nil
}

func (m *model) repaint() {
	if m.width <= 0 {
		return
	}
	m.bar.RenderPass(m.width, m.height)
	m.frame = m.surface.Frame()
}

func (m *model) View() string {
	return m.frame
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	return cfg.Build()
}

func main() {
	configPath := flag.String("config", config.File(), "Path to plank.toml")
	logPath := flag.String("log", "", "Write structured logs to this file")
	flag.Parse()

	logger, err := newLogger(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	th := theme.Default()
	th.Height = cfg.Bar.Height
	if cfg.Bar.Foreground != "" {
		th = th.WithForeground(lipgloss.Color(cfg.Bar.Foreground))
	}
	if cfg.Bar.Accent != "" {
		th = th.WithAccent(lipgloss.Color(cfg.Bar.Accent))
	}

	clk := clock.System()
	surface := element.NewSurface(th)
	b := bar.New(surface,
		bar.WithLayout(bar.LeftPack(cfg.Bar.Gap)),
		bar.WithLogger(logger),
	)
	sched := bar.NewScheduler(b, bar.WithSchedulerLogger(logger))

	entries, err := config.Build(cfg, clk)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	for _, e := range entries {
		if err := b.Add(e.Module); err != nil {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(1)
		}
		if e.Interval > 0 {
			if err := sched.Start(e.Module.ID(), e.Interval); err != nil {
				fmt.Fprintln(os.Stderr, "scheduler:", err)
				os.Exit(1)
			}
		}
	}

	m := &model{bar: b, sched: sched, surface: surface, height: cfg.Bar.Height}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "ui error:", err)
		os.Exit(1)
	}
}
