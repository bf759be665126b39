package config

import (
	"fmt"

	"github.com/rposlabs/kdash/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but kdash only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest kdash release.")
	}

	if cfg.Launch.QEMU == "" {
		return errors.New(errors.ErrConfig,
			"No emulator binary configured",
			"Set 'launch.qemu' in your .kdash.yaml (e.g. qemu-system-riscv64).")
	}

	if cfg.Launch.Kernel == "" {
		return errors.New(errors.ErrConfig,
			"No kernel image configured",
			"Set 'launch.kernel' to the path of your built kernel.")
	}

	if cfg.Launch.Machine == "" {
		return errors.New(errors.ErrConfig,
			"No machine model configured",
			"Set 'launch.machine' in your .kdash.yaml (e.g. virt).")
	}

	if cfg.Monitor.Interval <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid monitor interval: %s", cfg.Monitor.Interval),
			"Set 'monitor.interval' to a positive duration like 500ms.")
	}

	if cfg.Monitor.LogLines <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid log buffer size: %d", cfg.Monitor.LogLines),
			"Set 'monitor.log_lines' to a positive number.")
	}

	if cfg.Monitor.History <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid history size: %d", cfg.Monitor.History),
			"Set 'monitor.history' to a positive number.")
	}

	if cfg.Monitor.Truncate <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid truncate width: %d", cfg.Monitor.Truncate),
			"Set 'monitor.truncate' to a positive number of columns.")
	}

	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid color mode: %q", cfg.Output.Color),
			"Use 'auto', 'always', or 'never' for output.color.")
	}

	return nil
}
