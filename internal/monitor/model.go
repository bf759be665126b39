package monitor

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the wall-clock tick between dashboard redraws.
const DefaultInterval = 500 * time.Millisecond

// DefaultTruncateWidth is the display width log lines are cut to in the
// console panel.
const DefaultTruncateWidth = 60

// logTailLines is how many recent log lines the console panel shows.
const logTailLines = 8

// Model is the Bubble Tea model for the chart dashboard. On every tick it
// takes one snapshot from the shared monitor state and renders all four
// panels from that single consistent copy.
type Model struct {
	state    *State
	interval time.Duration
	truncate int

	width  int
	height int

	// snap is the snapshot taken at the last tick; every panel reads it so
	// one redraw never mixes old and new data.
	snap     Snapshot
	haveSnap bool

	// Console panel viewport for the scrollable log tail
	logView       viewport.Model
	viewportReady bool
	followTail    bool

	quitting bool
}

// tickMsg signals a periodic redraw.
type tickMsg time.Time

// NewModel creates a dashboard model reading from the given state.
// Zero interval or truncate width fall back to the defaults.
func NewModel(state *State, interval time.Duration, truncate int) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if truncate <= 0 {
		truncate = DefaultTruncateWidth
	}
	return Model{
		state:      state,
		interval:   interval,
		truncate:   truncate,
		followTail: true,
	}
}

// Init triggers the first refresh immediately; each tick schedules the next.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return tickMsg(time.Now())
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLogView()

	case tickMsg:
		m.refresh()
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the redraw interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh takes a fresh snapshot and rebuilds the console panel content.
func (m *Model) refresh() {
	m.snap = m.state.Snapshot()
	m.haveSnap = true

	if !m.viewportReady {
		m.resizeLogView()
	}

	tail := m.snap.TailLogs(logTailLines)
	lines := make([]string, len(tail))
	for i, line := range tail {
		lines[i] = truncateWithEllipsis(line, m.truncate)
	}
	m.logView.SetContent(LogLineStyle.Render(strings.Join(lines, "\n")))
	if m.followTail {
		m.logView.GotoBottom()
	}
}

// resizeLogView initializes or resizes the console panel viewport to fit the
// current panel geometry.
func (m *Model) resizeLogView() {
	innerWidth := m.panelWidth() - 4
	if innerWidth < 1 {
		innerWidth = 1
	}

	if !m.viewportReady {
		m.logView = viewport.New(innerWidth, logTailLines)
		m.viewportReady = true
		return
	}
	m.logView.Width = innerWidth
	m.logView.Height = logTailLines
}

// panelWidth returns the outer width of one of the four panels.
func (m Model) panelWidth() int {
	if m.width == 0 {
		return 40 // default before the first WindowSizeMsg
	}
	w := (m.width - 2) / 2
	if w < 20 {
		w = 20
	}
	return w
}
