// Package cli wires the kdash commands together: watch (the main
// dashboard), init, version, and shell completion.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFlag is the --config persistent flag value.
var configFlag string

// rootCmd is the base command for kdash.
var rootCmd = &cobra.Command{
	Use:   "kdash",
	Short: "Real-time dashboard for a kernel running under QEMU",
	Long: `kdash launches a kernel under QEMU and turns its console output
into a live dashboard: memory usage, process and syscall counters,
a memory trend graph, and the scrolling console log.

Run 'kdash watch' to start. In a real terminal you get the full
chart dashboard; when output is piped (or with --text) kdash prints
a plain-text report each time the kernel emits metrics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default: .kdash.yaml)")
}

// Execute runs the root command and exits non-zero on failure.
// Structured errors already carry their own formatting.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
