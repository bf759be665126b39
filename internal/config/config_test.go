package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rposlabs/kdash/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "qemu-system-riscv64", cfg.Launch.QEMU)
	assert.Equal(t, "virt", cfg.Launch.Machine)
	assert.Equal(t, "default", cfg.Launch.BIOS)
	assert.Equal(t, 500*time.Millisecond, cfg.Monitor.Interval)
	assert.Equal(t, 100, cfg.Monitor.LogLines)
	assert.Equal(t, 50, cfg.Monitor.History)
	assert.Equal(t, 60, cfg.Monitor.Truncate)
	assert.Equal(t, "auto", cfg.Output.Color)

	assert.NoError(t, Validate(cfg), "defaults must always validate")
}

func TestCommandLine(t *testing.T) {
	l := LaunchConfig{
		QEMU:    "qemu-system-riscv64",
		Machine: "virt",
		BIOS:    "default",
		Kernel:  "build/kernel.elf",
		Args:    []string{"-smp", "4"},
	}

	assert.Equal(t, []string{
		"-machine", "virt",
		"-nographic",
		"-bios", "default",
		"-kernel", "build/kernel.elf",
		"-smp", "4",
	}, l.CommandLine())
}

func TestLoadMergesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
version: 1
launch:
  kernel: build/my-kernel.elf
monitor:
  interval: 250ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, "build/my-kernel.elf", cfg.Launch.Kernel)
	assert.Equal(t, 250*time.Millisecond, cfg.Monitor.Interval)

	// Everything absent keeps its default
	assert.Equal(t, "qemu-system-riscv64", cfg.Launch.QEMU)
	assert.Equal(t, 100, cfg.Monitor.LogLines)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "launch: [not: a: mapping")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
monitor:
  log_lines: -5
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFindExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "version: 1\n")

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = Find(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestMonitorConfigMarshalsReadableInterval(t *testing.T) {
	out, err := yaml.Marshal(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(out), "interval: 500ms")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"future version", func(c *Config) { c.Version = 99 }, false},
		{"empty qemu", func(c *Config) { c.Launch.QEMU = "" }, false},
		{"empty kernel", func(c *Config) { c.Launch.Kernel = "" }, false},
		{"empty machine", func(c *Config) { c.Launch.Machine = "" }, false},
		{"zero interval", func(c *Config) { c.Monitor.Interval = 0 }, false},
		{"negative log lines", func(c *Config) { c.Monitor.LogLines = -1 }, false},
		{"zero history", func(c *Config) { c.Monitor.History = 0 }, false},
		{"zero truncate", func(c *Config) { c.Monitor.Truncate = 0 }, false},
		{"bad color mode", func(c *Config) { c.Output.Color = "sometimes" }, false},
		{"always color", func(c *Config) { c.Output.Color = "always" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
			}
		})
	}
}
