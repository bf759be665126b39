package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBootLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"boot line", "[KERNEL] initialization...", true},
		{"boot line with prefix", "0.123 [KERNEL] starting initialization... ok", true},
		{"kernel marker only", "[KERNEL] scheduler ready", false},
		{"init signal only", "initialization... elsewhere", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBootLine(tt.line))
		})
	}
}

func TestParseLineFullMetrics(t *testing.T) {
	line := "[METRICS] memory_total_mb=100 memory_used_mb=30 memory_free_mb=70 process_count=4 syscall_count=12"

	fields := ParseLine(line)
	require.Len(t, fields, 5)

	byKey := map[string]uint64{}
	for _, f := range fields {
		byKey[f.Key] = f.Value
	}
	assert.Equal(t, uint64(100), byKey[KeyMemoryTotal])
	assert.Equal(t, uint64(30), byKey[KeyMemoryUsed])
	assert.Equal(t, uint64(70), byKey[KeyMemoryFree])
	assert.Equal(t, uint64(4), byKey[KeyProcessCount])
	assert.Equal(t, uint64(12), byKey[KeySyscallCount])
}

func TestParseLineSparse(t *testing.T) {
	// Absent keys must yield no field at all, not a zero value.
	fields := ParseLine("[METRICS] process_count=9")
	require.Len(t, fields, 1)
	assert.Equal(t, Field{Key: KeyProcessCount, Value: 9}, fields[0])
}

func TestParseLineIgnoresNonMetricsLines(t *testing.T) {
	assert.Nil(t, ParseLine("memory_used_mb=30 without marker"))
	assert.Nil(t, ParseLine("[KERNEL] initialization..."))
	assert.Nil(t, ParseLine(""))
}

func TestParseLineMalformedValues(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		fields []Field
	}{
		{
			name:   "non-numeric payload skipped",
			line:   "[METRICS] memory_used_mb=abc",
			fields: nil,
		},
		{
			name:   "missing payload skipped",
			line:   "[METRICS] memory_used_mb=",
			fields: nil,
		},
		{
			name:   "one bad key does not poison the rest",
			line:   "[METRICS] memory_used_mb=oops memory_free_mb=70",
			fields: []Field{{Key: KeyMemoryFree, Value: 70}},
		},
		{
			name:   "digits then junk keeps the digit run",
			line:   "[METRICS] syscall_count=12xyz",
			fields: []Field{{Key: KeySyscallCount, Value: 12}},
		},
		{
			name:   "unrecognized keys ignored",
			line:   "[METRICS] irq_count=5",
			fields: nil,
		},
		{
			name:   "overflow skipped",
			line:   "[METRICS] syscall_count=99999999999999999999999999",
			fields: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fields, ParseLine(tt.line))
		})
	}
}

func TestParseLineOrderIndependent(t *testing.T) {
	a := ParseLine("[METRICS] memory_free_mb=70 memory_total_mb=100")
	require.Len(t, a, 2)

	// Fields come back in key-table order regardless of line order.
	assert.Equal(t, KeyMemoryTotal, a[0].Key)
	assert.Equal(t, KeyMemoryFree, a[1].Key)
}

func TestIsMetricsLine(t *testing.T) {
	assert.True(t, IsMetricsLine("[METRICS] anything"))
	assert.True(t, IsMetricsLine("prefix [METRICS]"))
	assert.False(t, IsMetricsLine("[KERNEL] boot"))
}
