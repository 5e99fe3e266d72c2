package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"chronicle/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage chronicle configuration",
		Long: `Manage chronicle configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags (--data, --log-level, --no-color)
2. Environment variables (CHRONICLE_DATA, CHRONICLE_LOG_LEVEL, CHRONICLE_NO_COLOR)
3. Config file (./` + DefaultConfigFile + ` or --config)
4. Defaults`,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("error marshaling config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default configuration file",
		Args:  cobra.MaximumNArgs(1),
		// init must work before any config file exists
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists: %s", path)
			}

			if err := config.DefaultConfig().SaveConfig(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created default configuration: %s\n", path)

			return nil
		},
	}

	configCmd.AddCommand(showCmd, initCmd)

	return configCmd
}
