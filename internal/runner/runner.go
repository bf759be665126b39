// Package runner launches the kernel under QEMU and feeds its merged
// output stream into the monitor, one line at a time.
package runner

import (
	"bufio"
	"context"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/rposlabs/kdash/internal/errors"
	"github.com/rposlabs/kdash/internal/logger"
	"github.com/rposlabs/kdash/internal/monitor"
)

// waitDelay bounds how long Wait blocks on pipe drain after the
// context is canceled.
const waitDelay = 5 * time.Second

// Spec describes the process to launch.
type Spec struct {
	Command string
	Args    []string
}

// Runner drives one kernel process: launch, stream, tear down.
//
// stdout and stderr are merged into a single stream so panic output
// interleaves with metrics in emission order. stdin is left closed;
// the emulator must not steal the controlling terminal from the UI.
type Runner struct {
	Spec  Spec
	State *monitor.State

	// Echo, when set, receives each line followed by a newline.
	// Text mode points this at the terminal; chart mode leaves it nil.
	Echo io.Writer

	// OnLine, when set, is called after each line has been ingested.
	OnLine func(line string)

	Log logger.Logger
}

// Run launches the process and consumes its output until EOF or
// cancellation. It returns the process exit code. A non-zero exit is
// reported through the code, not through err; err is reserved for
// failures to launch or stream.
func (r *Runner) Run(ctx context.Context) (int, error) {
	log := r.Log
	if log == nil {
		log = logger.Default()
	}

	cmd := exec.CommandContext(ctx, r.Spec.Command, r.Spec.Args...)
	cmd.WaitDelay = waitDelay

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, errors.WrapWithCode(err, errors.ErrExec,
			"Couldn't create the output pipe",
			"This shouldn't happen - please report this bug!")
	}
	// Merge stderr into the stdout pipe so both streams arrive in order.
	cmd.Stderr = cmd.Stdout

	log.Debug("launching %s %s", r.Spec.Command, strings.Join(r.Spec.Args, " "))

	if err := cmd.Start(); err != nil {
		return -1, errors.WrapWithCode(err, errors.ErrLaunch,
			"Couldn't launch the emulator",
			"Check that QEMU is installed and the kernel image has been built (cargo build --release).")
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		if r.Echo != nil {
			io.WriteString(r.Echo, line+"\n")
		}

		r.State.IngestLine(line)
		r.State.RecordSample()

		if r.OnLine != nil {
			r.OnLine(line)
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		log.Error("output stream failed: %v", err)
	}

	waitErr := cmd.Wait()
	if waitErr != nil {
		if ctx.Err() != nil {
			// Shutdown we asked for, not a failure. The kill signal shows
			// up as an ExitError, so this check has to come first.
			log.Debug("process stopped: %v", ctx.Err())
			return 0, nil
		}
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			code := exitErr.ExitCode()
			log.Info("process exited with code %d", code)
			return code, nil
		}
		return -1, errors.WrapWithCode(waitErr, errors.ErrExec,
			"The emulator process failed",
			"Check the console output above for details.")
	}

	return 0, nil
}
