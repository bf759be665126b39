package monitor

import "time"

// MetricSnapshot holds the most recent value of every recognized kernel metric.
// Fields update independently as metrics lines arrive, so used + free is not
// guaranteed to equal total at any given moment.
type MetricSnapshot struct {
	MemoryTotalMB uint64
	MemoryUsedMB  uint64
	MemoryFreeMB  uint64
	ProcessCount  uint64
	SyscallCount  uint64
	BootTime      time.Time // zero until the boot marker is seen
}

// Uptime returns the time elapsed since the kernel's boot marker, or false
// if no boot marker has been seen yet.
func (m MetricSnapshot) Uptime(now time.Time) (time.Duration, bool) {
	if m.BootTime.IsZero() {
		return 0, false
	}
	return now.Sub(m.BootTime), true
}

// UsagePercent returns memory usage as a percentage of total, or false when
// total is zero (no metrics received yet).
func (m MetricSnapshot) UsagePercent() (float64, bool) {
	if m.MemoryTotalMB == 0 {
		return 0, false
	}
	return float64(m.MemoryUsedMB) / float64(m.MemoryTotalMB) * 100, true
}

// Sample is one point of memory history, recorded once per processed line.
type Sample struct {
	At     time.Time
	UsedMB uint64
	FreeMB uint64
}

// Snapshot is an immutable copy of the monitor state, safe for concurrent
// reading while the consumption loop keeps writing.
type Snapshot struct {
	Metrics MetricSnapshot
	Logs    []string
	History []Sample
}

// UsedSeries returns the used-memory history as a float series for plotting.
func (s Snapshot) UsedSeries() []float64 {
	out := make([]float64, len(s.History))
	for i, sample := range s.History {
		out[i] = float64(sample.UsedMB)
	}
	return out
}

// FreeSeries returns the free-memory history as a float series for plotting.
func (s Snapshot) FreeSeries() []float64 {
	out := make([]float64, len(s.History))
	for i, sample := range s.History {
		out[i] = float64(sample.FreeMB)
	}
	return out
}

// TailLogs returns the most recent n log lines in arrival order.
func (s Snapshot) TailLogs(n int) []string {
	if n <= 0 || len(s.Logs) == 0 {
		return nil
	}
	if n > len(s.Logs) {
		n = len(s.Logs)
	}
	return s.Logs[len(s.Logs)-n:]
}
