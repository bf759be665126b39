package monitor

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (Model, *State) {
	t.Helper()
	s := NewState(DefaultLogLines, DefaultHistorySize)
	m := NewModel(s, DefaultInterval, DefaultTruncateWidth)
	return m, s
}

func TestNewModelDefaults(t *testing.T) {
	s := NewState(0, 0)
	m := NewModel(s, 0, 0)

	assert.Equal(t, DefaultInterval, m.interval)
	assert.Equal(t, DefaultTruncateWidth, m.truncate)
	assert.True(t, m.followTail)
}

func TestInitEmitsImmediateTick(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := m.Init()
	require.NotNil(t, cmd)

	_, ok := cmd().(tickMsg)
	assert.True(t, ok, "Init must trigger the first refresh without waiting an interval")
}

func TestUpdateTickTakesSnapshot(t *testing.T) {
	m, s := newTestModel(t)
	s.IngestLine("[METRICS] memory_total_mb=100 memory_used_mb=30 memory_free_mb=70")
	s.RecordSample()

	updated, cmd := m.Update(tickMsg(time.Now()))
	model := updated.(Model)

	assert.True(t, model.haveSnap)
	assert.Equal(t, uint64(30), model.snap.Metrics.MemoryUsedMB)
	assert.Len(t, model.snap.History, 1)
	assert.NotNil(t, cmd, "each tick must schedule the next one")
}

func TestUpdateWindowSizePreparesViewport(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model := updated.(Model)

	assert.Equal(t, 120, model.width)
	assert.True(t, model.viewportReady)
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m, _ := newTestModel(t)

			var msg tea.KeyMsg
			if key == "ctrl+c" {
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			} else {
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}

			updated, cmd := m.Update(msg)
			model := updated.(Model)

			assert.True(t, model.quitting)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestViewEmptyWhileQuitting(t *testing.T) {
	m, _ := newTestModel(t)
	m.quitting = true
	assert.Equal(t, "", m.View())
}

func TestViewRendersAllFourPanels(t *testing.T) {
	m, s := newTestModel(t)
	s.IngestLine("[KERNEL] initialization...")
	s.IngestLine("[METRICS] memory_total_mb=100 memory_used_mb=30 memory_free_mb=70 process_count=4 syscall_count=12")
	s.RecordSample()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	updated, _ = updated.(Model).Update(tickMsg(time.Now()))
	view := updated.(Model).View()

	assert.Contains(t, view, "Memory Usage")
	assert.Contains(t, view, "Memory Trend")
	assert.Contains(t, view, "Kernel Status")
	assert.Contains(t, view, "Console Output")
}

func TestViewPlaceholdersBeforeData(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	updated, _ = updated.(Model).Update(tickMsg(time.Now()))
	view := updated.(Model).View()

	// Total is 0: composition shows a placeholder rather than dividing by it.
	assert.Contains(t, view, "Waiting for data...")
	assert.Contains(t, view, "Collecting data...")
}

func TestRefreshTruncatesLogLines(t *testing.T) {
	s := NewState(0, 0)
	m := NewModel(s, DefaultInterval, 20)

	long := "this log line is far longer than the panel width allows"
	s.IngestLine(long)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	updated, _ = updated.(Model).Update(tickMsg(time.Now()))
	model := updated.(Model)

	assert.Contains(t, model.logView.View(), "...")
	assert.NotContains(t, model.logView.View(), long)
}
