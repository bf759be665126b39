package monitor

import (
	"strconv"
	"strings"
)

// Marker substrings recognized in kernel output. Matching is substring-based,
// not a strict grammar; the kernel is free to decorate lines however it likes.
const (
	BootMarker     = "[KERNEL]"
	BootInitSignal = "initialization..."
	MetricsMarker  = "[METRICS]"
)

// Recognized metric keys. Anything else in a metrics line is ignored.
const (
	KeyMemoryTotal  = "memory_total_mb"
	KeyMemoryUsed   = "memory_used_mb"
	KeyMemoryFree   = "memory_free_mb"
	KeyProcessCount = "process_count"
	KeySyscallCount = "syscall_count"
)

// metricKeys is the fixed key table scanned on every metrics line.
var metricKeys = []string{
	KeyMemoryTotal,
	KeyMemoryUsed,
	KeyMemoryFree,
	KeyProcessCount,
	KeySyscallCount,
}

// Field is a single recognized key=value update extracted from a line.
type Field struct {
	Key   string
	Value uint64
}

// IsBootLine reports whether a line carries the kernel boot marker.
func IsBootLine(line string) bool {
	return strings.Contains(line, BootMarker) && strings.Contains(line, BootInitSignal)
}

// IsMetricsLine reports whether a line carries the metrics marker.
func IsMetricsLine(line string) bool {
	return strings.Contains(line, MetricsMarker)
}

// ParseLine extracts recognized metric fields from a single log line.
// Only lines carrying the metrics marker are scanned; each key present with a
// valid numeric payload yields one Field. Keys with malformed values are
// skipped individually, and absent keys produce no field, so parse results
// are a sparse overlay over prior state rather than a full replacement.
func ParseLine(line string) []Field {
	if !IsMetricsLine(line) {
		return nil
	}

	var fields []Field
	for _, key := range metricKeys {
		if value, ok := extractValue(line, key); ok {
			fields = append(fields, Field{Key: key, Value: value})
		}
	}
	return fields
}

// extractValue finds "key=<digits>" in the line and parses the digit run.
// Returns false when the key is absent or its payload has no leading digits.
func extractValue(line, key string) (uint64, bool) {
	idx := strings.Index(line, key+"=")
	if idx < 0 {
		return 0, false
	}

	rest := line[idx+len(key)+1:]
	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}

	if digits == 0 {
		// Non-numeric payload (e.g. "memory_used_mb=abc"): skip this key only.
		return 0, false
	}

	value, err := strconv.ParseUint(rest[:digits], 10, 64)
	if err != nil {
		// Digit run too large to represent: skip rather than clamp.
		return 0, false
	}
	return value, true
}
