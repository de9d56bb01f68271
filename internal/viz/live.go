package viz

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/run"
	"github.com/san-kum/sortviz/internal/step"
)

const (
	width           = 80
	height          = 24
	panelWidth      = 46
	historyCapacity = 600
	sizeStep        = 5
	speedStep       = 10
	tickInterval    = 100 * time.Millisecond
)

type TickMsg time.Time

// Model is the interactive sorting view.
type Model struct {
	ctrl    *run.Controller
	box     *mailbox
	ids     []string
	algIdx  int
	size    int
	speed   int
	instant bool

	theme    Theme
	st       styles
	canvas   *BarCanvas
	history  *metrics.History
	spinner  spinner.Model
	progress progress.Model
	help     help.Model

	frame    step.Frame
	hasFrame bool
	snap     run.Snapshot
	notice   string

	width, height int
	showHelp      bool
}

// NewModel builds a model and its controller from cfg and generates the
// first sequence.
func NewModel(cfg *config.Config) Model {
	box := newMailbox()
	opts := []run.Option{
		run.WithSink(step.Throttle(box, cfg.FPS)),
		run.WithDelay(cfg.Delay()),
	}
	if cfg.Seed != 0 {
		opts = append(opts, run.WithRand(rand.New(rand.NewSource(cfg.Seed))))
	}
	ctrl := run.New(opts...)

	ids := ctrl.Registry().IDs()
	algIdx := 0
	if d, err := ctrl.Registry().Describe(cfg.Algorithm); err == nil {
		for i, id := range ids {
			if id == d.ID {
				algIdx = i
			}
		}
	} else {
		logging.Warn("unknown algorithm in config, using default", "algorithm", cfg.Algorithm)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	th := GetTheme(cfg.Theme)
	m := Model{
		ctrl:    ctrl,
		box:     box,
		ids:     ids,
		algIdx:  algIdx,
		size:    config.ClampSize(cfg.Size),
		speed:   config.ClampSpeed(cfg.Speed),
		instant: cfg.Instant,
		canvas:  NewBarCanvas(width-panelWidth, height-8),
		history: metrics.NewHistory(historyCapacity),
		spinner: s,
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.applyTheme(th)
	m.ctrl.Generate(m.size)
	m.snap = m.ctrl.Snapshot()
	return m
}

// Controller exposes the model's controller so callers can stop it on exit.
func (m Model) Controller() *run.Controller { return m.ctrl }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.box.wait(), tick(), m.spinner.Tick)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.canvas = NewBarCanvas(m.width-panelWidth-4, m.height-8)
		m.help.Width = m.width
		return m, nil

	case frameMsg:
		if msg.epoch == m.box.Epoch() {
			m.frame, m.hasFrame = msg.frame, true
			m.history.Observe(msg.frame)
		}
		return m, m.box.wait()

	case TickMsg:
		m.refresh()
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// refresh pulls a snapshot. Frames dropped by the throttle are recovered
// from the controller's last frame, so a paused view shows the exact step.
func (m *Model) refresh() {
	m.snap = m.ctrl.Snapshot()
	if m.snap.State == run.Idle {
		return
	}
	if f := m.snap.Frame; f.Step > m.frame.Step || (f.Final && !m.frame.Final) {
		m.frame, m.hasFrame = f, true
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	active := m.snap.State.Active()

	switch {
	case key.Matches(msg, keys.Quit):
		m.ctrl.Stop()
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, keys.Theme):
		m.applyTheme(NextTheme(m.theme.Name))
	case key.Matches(msg, keys.Start):
		if !active {
			m.start()
		}
	case key.Matches(msg, keys.Pause):
		if _, err := m.ctrl.TogglePause(); err != nil {
			m.notice = "nothing to pause"
		}
	case key.Matches(msg, keys.Stop):
		m.ctrl.Stop()
	case key.Matches(msg, keys.Generate):
		m.regenerate()
	case key.Matches(msg, keys.Grow):
		if !active {
			m.resize(m.size + sizeStep)
		}
	case key.Matches(msg, keys.Shrink):
		if !active {
			m.resize(m.size - sizeStep)
		}
	case key.Matches(msg, keys.Faster):
		m.setSpeed(m.speed + speedStep)
	case key.Matches(msg, keys.Slower):
		m.setSpeed(m.speed - speedStep)
	case key.Matches(msg, keys.Algorithm):
		if !active {
			m.algIdx = (m.algIdx + 1) % len(m.ids)
			// A stopped run may still be writing elements back.
			m.ctrl.Wait()
			m.ctrl.Load(m.ctrl.Snapshot().Values)
			m.clearRun()
		}
	}
	m.snap = m.ctrl.Snapshot()
	return m, nil
}

func (m *Model) start() {
	m.clearRun()
	if err := m.ctrl.Start(context.Background(), m.ids[m.algIdx]); err != nil {
		m.notice = err.Error()
		logging.Warn("start failed", "err", err)
	}
}

func (m *Model) regenerate() {
	m.ctrl.Generate(m.size)
	m.clearRun()
}

func (m *Model) resize(size int) {
	limit := m.maxBars()
	if size > limit {
		size = limit
	}
	m.size = config.ClampSize(size)
	m.regenerate()
}

func (m *Model) setSpeed(speed int) {
	m.speed = config.ClampSpeed(speed)
	if !m.instant {
		m.ctrl.SetSpeed(m.speed)
	}
}

// clearRun forgets frames and history from the previous run.
func (m *Model) clearRun() {
	m.box.Reset()
	m.history.Reset()
	m.frame, m.hasFrame = step.Frame{}, false
}

func (m *Model) applyTheme(th Theme) {
	m.theme = th
	m.st = newStyles(th)
	m.progress = progress.New(
		progress.WithGradient(string(th.Primary), string(th.Sorted)),
		progress.WithoutPercentage(),
		progress.WithWidth(panelWidth-8),
	)
	m.spinner.Style = lipgloss.NewStyle().Foreground(th.Accent)
}

// maxBars is the most bars the canvas can show one cell wide.
func (m Model) maxBars() int {
	if m.canvas.Width < config.MinSize {
		return config.MinSize
	}
	return m.canvas.Width
}

func (m Model) algorithm() algo.Descriptor {
	d, _ := m.ctrl.Registry().Describe(m.ids[m.algIdx])
	return d
}

// display is the frame to draw: the latest step of the current run, or the
// plain sequence when idle.
func (m Model) display() step.Frame {
	if m.hasFrame && m.snap.State != run.Idle {
		return m.frame
	}
	return step.Frame{Values: m.snap.Values, Pivot: -1, Counters: m.snap.Counters}
}

func (m Model) View() string {
	f := m.display()
	desc := m.algorithm()

	m.canvas.Draw(f)
	canvasView := lipgloss.JoinVertical(lipgloss.Left,
		m.st.header.Render(strings.ToUpper(desc.Name)),
		m.canvas.Render(m.theme),
		legend(m.theme),
	)

	var s strings.Builder
	s.WriteString(m.status() + "\n\n")
	s.WriteString(m.row("Comparisons", fmt.Sprintf("%d", f.Counters.Comparisons)))
	s.WriteString(m.row("Swaps", fmt.Sprintf("%d", f.Counters.Swaps)))
	s.WriteString(m.row("Time", fmt.Sprintf("%ds", m.snap.Elapsed)))
	s.WriteString(m.row("Size", fmt.Sprintf("%d", len(f.Values))))
	speed := config.SpeedLabel(m.speed)
	if m.instant {
		speed = "Instant"
	}
	s.WriteString(m.row("Speed", speed))
	s.WriteString("\n" + m.st.subtle.Render(m.operation(f)) + "\n")

	sorted := 0.0
	if n := len(f.Values); n > 0 {
		sorted = float64(len(f.Sorted)) / float64(n)
	}
	s.WriteString(m.progress.ViewAs(sorted) + "\n\n")

	s.WriteString(m.st.header.Render("COMPLEXITY") + "\n")
	s.WriteString(m.row("Best", desc.Best.Time))
	s.WriteString(m.row("Average", desc.Average.Time))
	s.WriteString(m.row("Worst", desc.Worst.Time))
	s.WriteString(m.row("Space", desc.Worst.Space))
	s.WriteString("\n")
	s.WriteString(m.reportView())

	if vals := m.history.Values(); len(vals) > 1 {
		chart := asciigraph.Plot(vals,
			asciigraph.Height(4),
			asciigraph.Width(panelWidth-14),
			asciigraph.Caption("Operations"),
		)
		s.WriteString(m.st.graph.Render(chart) + "\n")
	}
	if m.notice != "" {
		s.WriteString(m.st.paused.Render(m.notice) + "\n")
	}

	panel := m.st.panel.Render(s.String())
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panel)

	footer := m.help.View(keys)
	if m.showHelp {
		footer = separator(m.width/2) + "\n" + footer + "\n" + m.st.subtle.Render(desc.Description)
	}
	return body + "\n" + footer
}

func (m Model) row(label, value string) string {
	return m.st.label.Render(label) + m.st.value.Render(value) + "\n"
}

func (m Model) status() string {
	text := m.snap.Status
	switch m.snap.State {
	case run.Running:
		return m.spinner.View() + " " + m.st.running.Render(text)
	case run.Paused:
		return m.st.paused.Render("⏸ " + text)
	case run.Finished:
		return m.st.finished.Render("✓ " + text)
	default:
		return m.st.value.Render(text)
	}
}

func (m Model) operation(f step.Frame) string {
	switch m.snap.State {
	case run.Running:
		if f.Operation != "" {
			return f.Operation
		}
	case run.Paused, run.Finished:
		return m.snap.Operation
	}
	if f.Operation != "" {
		return f.Operation
	}
	return "Ready"
}

func (m Model) reportView() string {
	r := m.snap.Report
	if r == nil {
		return m.row("Actual", "-") + m.row("Scale", "-") + m.row("Efficiency", "-")
	}
	var s strings.Builder
	s.WriteString(m.row("Actual", r.String()))
	s.WriteString(m.row("Scale", r.Scale))
	s.WriteString(m.row("Efficiency", r.Efficiency))
	return s.String()
}

// Run starts the interactive program and blocks until it quits.
func Run(cfg *config.Config) error {
	m := NewModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()

	ctrl := m.Controller()
	ctrl.Stop()
	ctrl.Wait()
	return err
}
