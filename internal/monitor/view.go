package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// trendGraphHeight is the braille row count for each trend series.
const trendGraphHeight = 3

// renderDashboard renders the complete four-panel dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	width := m.panelWidth()
	inner := width - 4

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderCompositionPanel(width, inner),
		m.renderTrendPanel(width, inner),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderStatsPanel(width, inner),
		m.renderLogPanel(width),
	)

	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, top, bottom))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the dashboard title line with sample stats.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("kdash")

	stats := LabelStyle.Render(fmt.Sprintf(" | kernel dashboard | %d log lines | %d samples",
		len(m.snap.Logs), len(m.snap.History)))

	return HeaderStyle.Render(title + stats)
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"↑↓ scroll logs",
		"end follow",
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

// renderCompositionPanel shows the used/free memory proportion.
func (m Model) renderCompositionPanel(width, inner int) string {
	var lines []string
	lines = append(lines, PanelTitleStyle.Render("Memory Usage"))

	metrics := m.snap.Metrics
	if pct, ok := metrics.UsagePercent(); ok {
		freePct := 100 - pct
		if freePct < 0 {
			freePct = 0
		}
		lines = append(lines, "")
		lines = append(lines, RenderSplitBar(inner, pct))
		lines = append(lines, "")
		lines = append(lines, UsedLegendStyle.Render(
			fmt.Sprintf("█ Used (%d MB) %.1f%%", metrics.MemoryUsedMB, pct)))
		lines = append(lines, FreeLegendStyle.Render(
			fmt.Sprintf("█ Free (%d MB) %.1f%%", metrics.MemoryFreeMB, freePct)))
	} else {
		lines = append(lines, "")
		lines = append(lines, MutedStyle.Render("Waiting for data..."))
		lines = append(lines, "", "", "")
	}

	return PanelStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderTrendPanel plots used and free memory history against sample index.
// Both series are scaled against one shared maximum so the axes match.
func (m Model) renderTrendPanel(width, inner int) string {
	var lines []string
	lines = append(lines, PanelTitleStyle.Render("Memory Trend"))

	used := m.snap.UsedSeries()
	free := m.snap.FreeSeries()

	if len(used) == 0 {
		lines = append(lines, "")
		lines = append(lines, MutedStyle.Render("Collecting data..."))
		lines = append(lines, "", "", "")
	} else {
		maxVal := SeriesMax(used, free)
		lines = append(lines, UsedLegendStyle.Render(fmt.Sprintf("Used (max %.0f MB)", maxVal)))
		lines = append(lines, RenderBrailleSeries(used, inner, trendGraphHeight, maxVal, ColorUsed))
		lines = append(lines, FreeLegendStyle.Render("Free"))
		lines = append(lines, RenderBrailleSeries(free, inner, trendGraphHeight, maxVal, ColorFree))
	}

	return PanelStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderStatsPanel shows the textual system statistics block.
func (m Model) renderStatsPanel(width, inner int) string {
	metrics := m.snap.Metrics

	var lines []string
	lines = append(lines, PanelTitleStyle.Render("Kernel Status"))
	lines = append(lines, "")

	if uptime, ok := metrics.Uptime(time.Now()); ok {
		lines = append(lines, statLine("Uptime", fmt.Sprintf("%.1fs", uptime.Seconds())))
	} else {
		lines = append(lines, statLine("Uptime", "-"))
	}
	lines = append(lines, statLine("Total Memory", fmt.Sprintf("%d MB", metrics.MemoryTotalMB)))
	lines = append(lines, statLine("Processes", fmt.Sprintf("%d", metrics.ProcessCount)))
	lines = append(lines, statLine("System Calls", fmt.Sprintf("%d", metrics.SyscallCount)))

	// Pad to roughly the log panel height so the bottom row lines up.
	for len(lines) < logTailLines+1 {
		lines = append(lines, "")
	}

	return PanelStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderLogPanel shows the most recent kernel log lines.
func (m Model) renderLogPanel(width int) string {
	var lines []string
	lines = append(lines, PanelTitleStyle.Render("Console Output"))

	if m.viewportReady {
		lines = append(lines, m.logView.View())
	} else {
		lines = append(lines, MutedStyle.Render("Waiting for output..."))
	}

	return PanelStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// statLine formats one "label: value" stats row.
func statLine(label, value string) string {
	return LabelStyle.Render(fmt.Sprintf("%-14s", label+":")) + ValueStyle.Render(value)
}
