package cli

// Mode selects how monitor output is rendered.
type Mode int

const (
	// ModeChart is the live multi-panel dashboard.
	ModeChart Mode = iota
	// ModeText prints a plain report per metrics line.
	ModeText
)

// String returns the mode name for logs and the startup banner.
func (m Mode) String() string {
	if m == ModeText {
		return "text"
	}
	return "chart"
}

// SelectMode picks the render mode. An explicit text request always
// wins; otherwise the chart runs only when the terminal can host it.
func SelectMode(chartAvailable, forceText bool) Mode {
	if forceText || !chartAvailable {
		return ModeText
	}
	return ModeChart
}
