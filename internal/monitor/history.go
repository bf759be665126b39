package monitor

// Default ring capacities. Logs keep the raw console tail; history keeps
// memory samples for the trend graph.
const (
	DefaultLogLines    = 100
	DefaultHistorySize = 50
)

// lineRing is a fixed-size circular buffer of raw log lines.
// Oldest lines are evicted first once the buffer is full.
type lineRing struct {
	data  []string
	head  int
	count int
	size  int
}

func newLineRing(size int) *lineRing {
	if size <= 0 {
		size = DefaultLogLines
	}
	return &lineRing{
		data: make([]string, size),
		size: size,
	}
}

// push appends a line, evicting the oldest when full.
func (r *lineRing) push(line string) {
	r.data[r.head] = line
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// all returns every stored line in arrival order (oldest first).
func (r *lineRing) all() []string {
	if r.count == 0 {
		return nil
	}

	result := make([]string, r.count)

	// head points to the next write position, so the oldest value is at
	// head-count (mod size).
	start := (r.head - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}
	return result
}

// sampleRing is a fixed-size circular buffer of memory history samples.
type sampleRing struct {
	data  []Sample
	head  int
	count int
	size  int
}

func newSampleRing(size int) *sampleRing {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &sampleRing{
		data: make([]Sample, size),
		size: size,
	}
}

// push appends a sample, evicting the oldest when full.
func (r *sampleRing) push(s Sample) {
	r.data[r.head] = s
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// all returns every stored sample in recording order (oldest first).
func (r *sampleRing) all() []Sample {
	if r.count == 0 {
		return nil
	}

	result := make([]Sample, r.count)
	start := (r.head - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}
	return result
}
