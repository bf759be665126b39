package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rposlabs/kdash/internal/config"
	"github.com/rposlabs/kdash/internal/logger"
	"github.com/rposlabs/kdash/internal/monitor"
	"github.com/rposlabs/kdash/internal/runner"
)

// shutdownGrace bounds how long we wait for the emulator to die after
// the dashboard closes.
const shutdownGrace = 10 * time.Second

// Command-specific flags
var (
	watchText     bool
	watchInterval string
	watchKernel   string
)

// watchCmd launches the kernel under QEMU and monitors its output.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Launch the kernel and monitor its output",
	Long: `Launch the kernel under QEMU and monitor its console output.

In a real terminal this opens the live chart dashboard. When output
is piped, when TERM is dumb, or with --text, kdash prints a plain
text report every time the kernel emits a metrics line instead.

Examples:
  kdash watch
  kdash watch --text
  kdash watch --interval 1s
  kdash watch --kernel build/kernel.elf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	// Bare 'kdash' behaves like 'kdash watch', flags included.
	rootCmd.RunE = watchCmd.RunE
	addWatchFlags(watchCmd)
	addWatchFlags(rootCmd)
}

// addWatchFlags registers the watch flags; they go on both the watch
// command and the root command since bare 'kdash' runs watch.
func addWatchFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&watchText, "text", false, "force plain text output")
	cmd.Flags().StringVar(&watchInterval, "interval", "", "chart refresh interval (e.g. 500ms, 1s)")
	cmd.Flags().StringVar(&watchKernel, "kernel", "", "kernel image to boot (overrides config)")
}

func watchCommand() error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	if watchKernel != "" {
		cfg.Launch.Kernel = watchKernel
	}

	interval, err := ParseInterval(watchInterval)
	if err != nil {
		return err
	}
	if interval == 0 {
		interval = cfg.Monitor.Interval
	}

	applyColorMode(cfg.Output.Color)

	mode := SelectMode(ChartAvailable(), watchText)
	log := logger.NewEnvLogger("[watch]")
	log.Debug("mode=%s interval=%s kernel=%s", mode, interval, cfg.Launch.Kernel)

	state := monitor.NewState(cfg.Monitor.LogLines, cfg.Monitor.History)
	spec := runner.Spec{
		Command: cfg.Launch.QEMU,
		Args:    cfg.Launch.CommandLine(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if mode == ModeText {
		return runTextMode(ctx, spec, state, log)
	}
	return runChartMode(ctx, spec, state, interval, cfg.Monitor.Truncate, log)
}

// runTextMode streams the kernel output to the terminal, printing a
// fresh report each time a metrics line arrives.
func runTextMode(ctx context.Context, spec runner.Spec, state *monitor.State, log logger.Logger) error {
	printBanner(spec)

	r := &runner.Runner{
		Spec:  spec,
		State: state,
		Echo:  os.Stdout,
		OnLine: func(line string) {
			if monitor.IsMetricsLine(line) {
				fmt.Print(monitor.Report(state.Snapshot(), time.Now()))
			}
		},
		Log: log,
	}

	code, err := r.Run(ctx)
	if err != nil {
		return err
	}

	printExitReport(state, code)
	return nil
}

// runChartMode runs the emulator in the background while the dashboard
// owns the terminal. Closing the dashboard tears the emulator down.
func runChartMode(ctx context.Context, spec runner.Spec, state *monitor.State, interval time.Duration, truncate int, log logger.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := &runner.Runner{
		Spec:  spec,
		State: state,
		Log:   log,
	}

	model := monitor.NewModel(state, interval, truncate)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// A failed launch leaves nothing to watch: quit the dashboard so
	// the error surfaces immediately instead of after a manual quit.
	done := startRunner(ctx, r, p.Quit)

	if _, uiErr := p.Run(); uiErr != nil {
		cancel()
		<-done
		return uiErr
	}

	// Dashboard closed; stop the emulator and wait for the reader to
	// drain, but don't hang forever on a wedged process.
	cancel()
	res, joined := joinRunner(done, shutdownGrace)
	if !joined {
		log.Warn("emulator did not stop within %s; exit status unknown", shutdownGrace)
		return nil
	}
	if res.err != nil {
		return res.err
	}

	printExitReport(state, res.code)
	return nil
}

// runResult carries the emulator's outcome out of the runner goroutine.
type runResult struct {
	code int
	err  error
}

// startRunner launches the emulator in the background and returns the
// channel its outcome arrives on. The outcome is buffered before
// onFailure runs, so a caller woken by onFailure can read it without
// blocking.
func startRunner(ctx context.Context, r *runner.Runner, onFailure func()) <-chan runResult {
	done := make(chan runResult, 1)
	go func() {
		code, err := r.Run(ctx)
		done <- runResult{code: code, err: err}
		if err != nil && onFailure != nil {
			onFailure()
		}
	}()
	return done
}

// joinRunner waits for the runner's outcome, giving up after grace.
func joinRunner(done <-chan runResult, grace time.Duration) (runResult, bool) {
	select {
	case res := <-done:
		return res, true
	case <-time.After(grace):
		return runResult{}, false
	}
}

// printBanner announces what is being launched in text mode.
func printBanner(spec runner.Spec) {
	fmt.Printf("kdash: launching %s %s\n", spec.Command, strings.Join(spec.Args, " "))
	fmt.Println("kdash: text mode (press Ctrl-C to stop)")
	fmt.Println()
}

// printExitReport summarizes the run after the process ends.
func printExitReport(state *monitor.State, code int) {
	snap := state.Snapshot()

	fmt.Println()
	fmt.Printf("kdash: process exited with code %d\n", code)
	if up, ok := snap.Metrics.Uptime(time.Now()); ok {
		fmt.Printf("kdash: kernel ran for %.1fs\n", up.Seconds())
	}
	fmt.Printf("kdash: %d log lines captured, %d samples recorded\n",
		len(snap.Logs), len(snap.History))
}
