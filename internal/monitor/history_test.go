package monitor

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineRingFIFO(t *testing.T) {
	r := newLineRing(3)
	assert.Nil(t, r.all())

	r.push("a")
	r.push("b")
	assert.Equal(t, []string{"a", "b"}, r.all())

	r.push("c")
	r.push("d") // evicts "a"
	assert.Equal(t, []string{"b", "c", "d"}, r.all())
}

func TestLineRingCapacityNeverExceeded(t *testing.T) {
	r := newLineRing(100)
	for i := 0; i < 250; i++ {
		r.push(fmt.Sprintf("line %d", i))
	}

	all := r.all()
	require.Len(t, all, 100)
	assert.Equal(t, "line 150", all[0])
	assert.Equal(t, "line 249", all[99])
}

func TestLineRingDefaultCapacity(t *testing.T) {
	r := newLineRing(0)
	assert.Equal(t, DefaultLogLines, r.size)

	r = newLineRing(-5)
	assert.Equal(t, DefaultLogLines, r.size)
}

func TestSampleRingFIFO(t *testing.T) {
	r := newSampleRing(2)
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	r.push(Sample{At: base, UsedMB: 1})
	r.push(Sample{At: base.Add(time.Second), UsedMB: 2})
	r.push(Sample{At: base.Add(2 * time.Second), UsedMB: 3})

	all := r.all()
	require.Len(t, all, 2)
	assert.Equal(t, uint64(2), all[0].UsedMB)
	assert.Equal(t, uint64(3), all[1].UsedMB)
}

func TestSampleRingLengthTracksMin(t *testing.T) {
	r := newSampleRing(50)
	for i := 0; i < 30; i++ {
		r.push(Sample{UsedMB: uint64(i)})
	}
	assert.Len(t, r.all(), 30)

	for i := 0; i < 40; i++ {
		r.push(Sample{UsedMB: uint64(i)})
	}
	assert.Len(t, r.all(), 50)
}
