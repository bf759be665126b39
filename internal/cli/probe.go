package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ChartAvailable reports whether the current terminal can host the
// chart dashboard: stdout must be a TTY and TERM must not be dumb.
func ChartAvailable() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

// applyColorMode forces or disables color per the output.color setting.
// "auto" leaves lipgloss's own terminal detection in place.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
