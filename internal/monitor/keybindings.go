package monitor

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyScrollUp   = "up"
	KeyScrollUpK  = "k"
	KeyScrollDn   = "down"
	KeyScrollDnJ  = "j"
	KeyJumpBottom = "end"
)

// HandleKeyMsg processes keyboard input and returns updated model state and
// command. Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyScrollUp, KeyScrollUpK:
		m.logView.ScrollUp(1)
		m.followTail = false
		return true, nil

	case KeyScrollDn, KeyScrollDnJ:
		m.logView.ScrollDown(1)
		if m.logView.AtBottom() {
			m.followTail = true
		}
		return true, nil

	case KeyJumpBottom:
		m.logView.GotoBottom()
		m.followTail = true
		return true, nil
	}

	return false, nil
}
