// Package monitor implements the metrics core and both renderers of the
// kernel dashboard.
//
// The package turns the kernel's raw serial output into a bounded,
// concurrently readable metrics model and draws it two ways: a periodic
// text report and a live four-panel TUI.
//
// # Key Components
//
//	ParseLine   - Extracts recognized key=value metric fields from one line
//	State       - Single-writer metrics state with bounded log/history rings
//	Snapshot    - Immutable copy of State, safe for concurrent readers
//	Report      - Stateless text renderer (gauge bar, counts, log tail)
//	Model       - Bubble Tea model for the chart dashboard
//
// # Data Flow
//
// The process runner feeds every kernel output line to State.IngestLine and
// then records one history sample. Renderers never touch State directly;
// they call Snapshot, which copies the metric values and both rings under a
// read lock so a redraw can never observe a ring mid-eviction.
//
// # Chart Dashboard
//
// The Model follows The Elm Architecture (Model-Update-View). A tick message
// fires every 500ms; the handler takes one Snapshot and all four panels
// (memory composition, memory trend, kernel status, console tail) render
// from that single copy, so a frame never mixes old and new data. The trend
// panel plots used and free memory against sample index with both series
// scaled to a shared maximum.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	j/k, ↑/↓    - Scroll the console panel
//	End         - Jump to the newest line and follow the tail
package monitor
