package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/kinwave/internal/config"
	"github.com/san-kum/kinwave/internal/metrics"
	"github.com/san-kum/kinwave/internal/viz"
	"github.com/san-kum/kinwave/internal/wave"
)

const sliderWidth = 24

// Model is the parameter panel. Solving happens only on an explicit run key.
type Model struct {
	cfg     config.Config
	cursor  int
	profile *wave.Profile
	values  map[string]float64
	err     error
	stale   bool
	runs    int
	width   int
	height  int
}

func New(cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Model{cfg: *cfg, width: 80, height: 24}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Config() config.Config  { return m.cfg }
func (m Model) Profile() *wave.Profile { return m.profile }
func (m Model) Err() error             { return m.err }
func (m Model) Runs() int              { return m.runs }
func (m Model) Stale() bool            { return m.stale }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(config.Ranges)-1 {
			m.cursor++
		}
	case "left", "h":
		m.nudge(-1)
	case "right", "l":
		m.nudge(1)
	case "H":
		m.nudge(-10)
	case "L":
		m.nudge(10)
	case "d":
		m.cfg = *config.DefaultConfig()
		m.markStale()
	case "enter", "r":
		m.run()
	}
	return m, nil
}

func (m *Model) nudge(steps int) {
	r := config.Ranges[m.cursor]
	m.cfg.Set(r.Key, r.Nudge(m.cfg.Get(r.Key), steps))
	m.markStale()
}

func (m *Model) markStale() {
	if m.runs > 0 {
		m.stale = true
	}
}

func (m *Model) run() {
	m.runs++
	m.stale = false
	prof, err := wave.Solve(m.cfg.Params())
	if err != nil {
		m.profile, m.values, m.err = nil, nil, err
		return
	}
	m.profile, m.err = prof, nil
	m.values = metrics.Evaluate(prof, metrics.Default()...)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n  " + viz.Title.Render(strings.ToUpper(viz.PlotTitle)) + "\n")
	b.WriteString("  " + viz.Separator(48) + "\n\n")

	for i, r := range config.Ranges {
		v := m.cfg.Get(r.Key)
		label := fmt.Sprintf("%-46s", r.Label)
		value := fmt.Sprintf("%9.2f", v)
		bar := viz.Slider(v, r.Min, r.Max, sliderWidth)
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("  %s %s %s %s\n", viz.Selected.Render("▸"), viz.Selected.Render(label), bar, viz.MetricValue.Render(value)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", viz.MetricLabel.Render(label), bar, viz.Subtle.Render(value)))
		}
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString("  " + viz.Error.Render(m.err.Error()) + "\n")
	case m.profile != nil:
		plotWidth := m.width - 16
		if plotWidth < 20 {
			plotWidth = 20
		}
		b.WriteString(indent(viz.Plot(m.profile, viz.PlotOptions{Width: plotWidth, Height: 10}), "  "))
		b.WriteString("  " + m.metricLine() + "\n")
	default:
		b.WriteString("  " + viz.Subtle.Render("press enter to run") + "\n")
	}
	if m.stale {
		b.WriteString("  " + viz.KeyHint.Render("parameters changed since the last run") + "\n")
	}

	b.WriteString("\n  " + viz.KeyHint.Render("j/k select  h/l adjust  H/L x10  d defaults  enter run  q quit") + "\n")
	return b.String()
}

func (m Model) metricLine() string {
	parts := make([]string, 0, len(m.values))
	for _, name := range metrics.Names(m.values) {
		parts = append(parts, viz.MetricLabel.Render(name+"=")+viz.MetricValue.Render(fmt.Sprintf("%.3f", m.values[name])))
	}
	return strings.Join(parts, "  ")
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n") + "\n"
}

func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(New(cfg), tea.WithAltScreen()).Run()
	return err
}
