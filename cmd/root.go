// Package cmd contains CLI command definitions
package cmd

import (
	"fmt"
	"os"

	"github.com/ethpandaops/snapcheck/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Logger is the shared logger instance for all commands
	Logger = logrus.New()

	// appConfig is resolved once per invocation, before any subcommand runs.
	appConfig *config.AppConfig

	envFile      string
	fixturesDir  string
	resultsDir   string
	snapshotPath string
	bindingsPath string
	verbose      bool

	rootCmd = &cobra.Command{
		Use:   "snapcheck",
		Short: "Snapcheck - snapshot assertion harness",
		Long: `Snapcheck verifies a captured host state snapshot against partial JSON fixtures
and writes one outcome per check.

Run without arguments to launch interactive mode, or use subcommands for direct operations.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd.Context())
		},
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "env", config.DefaultEnvFile, "Environment file to load")
	flags.StringVar(&fixturesDir, "fixtures", "", "Fixtures directory (overrides SNAPCHECK_FIXTURES_DIR)")
	flags.StringVar(&resultsDir, "results", "", "Results directory (overrides SNAPCHECK_RESULTS_DIR)")
	flags.StringVar(&snapshotPath, "snapshot", "", "Snapshot dump path (overrides SNAPCHECK_SNAPSHOT)")
	flags.StringVar(&bindingsPath, "bindings", "", "Key bindings file (overrides SNAPCHECK_BINDINGS)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func loadConfig(_ *cobra.Command, _ []string) error {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}

	cfg, err := config.Parse()
	if err != nil {
		return err
	}

	for flag, target := range map[string]*string{
		fixturesDir:  &cfg.FixturesDir,
		resultsDir:   &cfg.ResultsDir,
		snapshotPath: &cfg.SnapshotPath,
		bindingsPath: &cfg.BindingsPath,
	} {
		if flag != "" {
			*target = flag
		}
	}

	Logger = newLogger(verbose, cfg.LogLevel)
	appConfig = cfg

	return nil
}
