package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rposlabs/kdash/internal/config"
	"github.com/rposlabs/kdash/internal/errors"
)

var initForce bool

// initCmd creates a new .kdash.yaml configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .kdash.yaml configuration",
	Long: `Initialize a new kdash configuration file.

Creates a .kdash.yaml file in the current directory and walks you
through the emulator and kernel image settings.

Examples:
  kdash init
  kdash init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}

func initCommand(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	qemu := cfg.Launch.QEMU
	machine := cfg.Launch.Machine
	kernel := cfg.Launch.Kernel

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("QEMU binary").
				Description("The emulator used to boot the kernel").
				Placeholder("qemu-system-riscv64").
				Value(&qemu).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("emulator binary is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Machine model").
				Description("Passed to QEMU as -machine").
				Placeholder("virt").
				Value(&machine).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("machine model is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Kernel image").
				Description("Path to the kernel binary to boot").
				Placeholder("target/riscv64gc-unknown-none-elf/release/kernel").
				Value(&kernel).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("kernel image path is required")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or edit .kdash.yaml by hand")
	}

	cfg.Launch.QEMU = strings.TrimSpace(qemu)
	cfg.Launch.Machine = strings.TrimSpace(machine)
	cfg.Launch.Kernel = strings.TrimSpace(kernel)

	return writeConfigFile(configPath, cfg)
}

// configHeader explains the file at the top of a generated config.
const configHeader = `# kdash configuration
# launch:   how the kernel is started under QEMU
# monitor:  sampling interval and buffer sizes
# output:   color mode (auto, always, never)
`

// writeConfigFile marshals the config to YAML and writes it out.
func writeConfigFile(path string, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"This shouldn't happen - please report this bug!")
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check directory permissions")
	}

	fmt.Printf("Created %s\n", path)
	fmt.Println("Run 'kdash watch' to start monitoring.")
	return nil
}
