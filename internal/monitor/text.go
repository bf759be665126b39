package monitor

import (
	"fmt"
	"strings"
	"time"
)

// Text report layout constants
const (
	textSeparatorWidth = 60
	textGaugeWidth     = 40
	textLogTail        = 10
)

// Report renders a self-contained text dashboard block from a snapshot.
// It is pure: no side effects, no state, safe to call from any renderer
// trigger. The usage gauge is omitted entirely when total memory is zero.
func Report(snap Snapshot, now time.Time) string {
	var b strings.Builder
	sep := strings.Repeat("=", textSeparatorWidth)

	b.WriteString("\n" + sep + "\n")
	b.WriteString("  KERNEL DASHBOARD - Text Mode\n")
	b.WriteString(sep + "\n")

	if uptime, ok := snap.Metrics.Uptime(now); ok {
		fmt.Fprintf(&b, "Uptime: %.1fs\n", uptime.Seconds())
	}

	b.WriteString("\nMemory Status:\n")
	fmt.Fprintf(&b, "  Total: %d MB\n", snap.Metrics.MemoryTotalMB)
	fmt.Fprintf(&b, "  Used:  %d MB\n", snap.Metrics.MemoryUsedMB)
	fmt.Fprintf(&b, "  Free:  %d MB\n", snap.Metrics.MemoryFreeMB)

	if pct, ok := snap.Metrics.UsagePercent(); ok {
		fmt.Fprintf(&b, "  Usage: [%s] %.1f%%\n", gaugeBar(pct, textGaugeWidth), pct)
	}

	b.WriteString("\nProcess Management:\n")
	fmt.Fprintf(&b, "  Active Processes: %d\n", snap.Metrics.ProcessCount)
	fmt.Fprintf(&b, "  System Calls:     %d\n", snap.Metrics.SyscallCount)

	b.WriteString("\nRecent Kernel Logs:\n")
	for _, line := range snap.TailLogs(textLogTail) {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	b.WriteString(sep + "\n")
	return b.String()
}

// gaugeBar renders a fixed-width proportional bar for a 0-100 percentage.
// Out-of-range values are clamped; used can transiently exceed total.
func gaugeBar(percent float64, width int) string {
	filled := int(float64(width) * percent / 100)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
