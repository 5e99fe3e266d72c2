// Package cli wires the catalog checkers into a cobra command tree.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"chronicle/internal/config"
	"chronicle/internal/logger"
)

// Version is reported by the version command.
const Version = "0.3.0"

// DefaultConfigFile is read when --config is not given and the file exists.
const DefaultConfigFile = "chronicle.yaml"

// Failure signals returned by commands; main maps them to exit code 1.
var (
	ErrValidationFailed    = errors.New("catalog validation failed")
	ErrDuplicateCandidates = errors.New("possible duplicates found")
)

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	log *logger.Logger

	cfgFile string
}

// Execute builds the command tree and runs it with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns a fresh command tree. Each call has its own viper
// instance, so trees can be built side by side in tests.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "chronicle",
		Short: "Chronicle - duplicate search and placement checks for the historical catalog",
		Long: `Chronicle checks the historical catalog of people, events and places.

Before adding a record, search for near-duplicates:
  chronicle match "Council of Trent"

Before committing, check that every record sits in the century its date
implies and that no id is used twice:
  chronicle validate

Validation exits with status 1 when errors are found. Records without a
date are reported as warnings and do not fail the run.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./"+DefaultConfigFile+" if present)")
	flags.String("data", "", "catalog root directory (overrides catalog.root)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Bool("no-color", false, "disable colored output")

	_ = a.v.BindPFlag("data", flags.Lookup("data"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("no_color", flags.Lookup("no-color"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newMatchCmd(a),
		newValidateCmd(a),
		newWatchCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "chronicle v%s\n", Version)
		},
	}
}

// init resolves configuration: defaults, then the YAML file, then
// CHRONICLE_* environment variables, then flags.
func (a *app) init() error {
	a.v.SetEnvPrefix("CHRONICLE")
	a.v.AutomaticEnv()

	path := a.cfgFile
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}

	cfg := config.DefaultConfig()

	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if root := a.v.GetString("data"); root != "" {
		cfg.Catalog.Root = root
	}

	if level := a.v.GetString("log_level"); level != "" {
		cfg.Logging.Level = level
	}

	if a.v.GetBool("no_color") {
		cfg.Report.Color = false
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	a.cfg = cfg
	a.log = logger.NewLogger(cfg.Logging.Level)

	if path != "" {
		a.log.Debug("using config file", "path", path)
	}

	return nil
}
