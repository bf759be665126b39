package monitor

import (
	"sync"
	"time"
)

// State is the single mutable object in the system. The consumption loop is
// its only writer; renderers read it through Snapshot. A RWMutex plus
// copy-on-read isolation keeps readers from ever observing a ring
// mid-eviction.
type State struct {
	mu      sync.RWMutex
	metrics MetricSnapshot
	logs    *lineRing
	history *sampleRing

	// now is swappable for deterministic tests.
	now func() time.Time
}

// NewState creates monitor state with the given ring capacities.
// Non-positive capacities fall back to the defaults.
func NewState(logLines, historySize int) *State {
	return &State{
		logs:    newLineRing(logLines),
		history: newSampleRing(historySize),
		now:     time.Now,
	}
}

// IngestLine records a raw log line and applies any metric updates it
// carries. Every line lands in the log ring regardless of whether it
// matched; metric extraction is best-effort and never fails.
func (s *State) IngestLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs.push(line)

	// First boot marker wins; later ones never move the boot time.
	if IsBootLine(line) && s.metrics.BootTime.IsZero() {
		s.metrics.BootTime = s.now()
	}

	for _, f := range ParseLine(line) {
		switch f.Key {
		case KeyMemoryTotal:
			s.metrics.MemoryTotalMB = f.Value
		case KeyMemoryUsed:
			s.metrics.MemoryUsedMB = f.Value
		case KeyMemoryFree:
			s.metrics.MemoryFreeMB = f.Value
		case KeyProcessCount:
			s.metrics.ProcessCount = f.Value
		case KeySyscallCount:
			s.metrics.SyscallCount = f.Value
		}
	}
}

// RecordSample appends the current memory values to the history ring.
// The consumption loop calls this once per processed line, so history
// density follows line throughput rather than wall-clock time.
func (s *State) RecordSample() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.push(Sample{
		At:     s.now(),
		UsedMB: s.metrics.MemoryUsedMB,
		FreeMB: s.metrics.MemoryFreeMB,
	})
}

// Snapshot returns an immutable copy of the current metrics and both rings.
// Safe to call concurrently with IngestLine/RecordSample.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Metrics: s.metrics,
		Logs:    s.logs.all(),
		History: s.history.all(),
	}
}
