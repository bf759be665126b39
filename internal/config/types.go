package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .kdash.yaml configuration file.
type Config struct {
	Version int           `yaml:"version" mapstructure:"version"`
	Launch  LaunchConfig  `yaml:"launch" mapstructure:"launch"`
	Monitor MonitorConfig `yaml:"monitor" mapstructure:"monitor"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
}

// LaunchConfig describes how the kernel is started under QEMU.
type LaunchConfig struct {
	// QEMU is the emulator binary to invoke.
	QEMU string `yaml:"qemu" mapstructure:"qemu"`

	// Machine is the QEMU machine model.
	Machine string `yaml:"machine" mapstructure:"machine"`

	// BIOS selects the firmware. "default" uses the emulator's built-in.
	BIOS string `yaml:"bios" mapstructure:"bios"`

	// Kernel is the path to the kernel image to boot.
	Kernel string `yaml:"kernel" mapstructure:"kernel"`

	// Args are extra arguments appended after the standard flags.
	Args []string `yaml:"args" mapstructure:"args"`
}

// CommandLine builds the argument list passed to the QEMU binary.
func (l LaunchConfig) CommandLine() []string {
	args := []string{
		"-machine", l.Machine,
		"-nographic",
		"-bios", l.BIOS,
		"-kernel", l.Kernel,
	}
	return append(args, l.Args...)
}

// MonitorConfig controls sampling and display limits.
type MonitorConfig struct {
	// Interval is how often the chart dashboard redraws.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// LogLines caps the console log buffer.
	LogLines int `yaml:"log_lines" mapstructure:"log_lines"`

	// History caps the memory trend sample buffer.
	History int `yaml:"history" mapstructure:"history"`

	// Truncate is the maximum log line width in the chart's log panel.
	Truncate int `yaml:"truncate" mapstructure:"truncate"`
}

// MarshalYAML writes the interval as a duration string ("500ms") rather
// than raw nanoseconds, so generated config files stay editable.
func (m MonitorConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Interval string `yaml:"interval"`
		LogLines int    `yaml:"log_lines"`
		History  int    `yaml:"history"`
		Truncate int    `yaml:"truncate"`
	}{
		Interval: m.Interval.String(),
		LogLines: m.LogLines,
		History:  m.History,
		Truncate: m.Truncate,
	}, nil
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Launch: LaunchConfig{
			QEMU:    "qemu-system-riscv64",
			Machine: "virt",
			BIOS:    "default",
			Kernel:  "target/riscv64gc-unknown-none-elf/release/kernel",
		},
		Monitor: MonitorConfig{
			Interval: 500 * time.Millisecond,
			LogLines: 100,
			History:  50,
			Truncate: 60,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
