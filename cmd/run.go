package cmd

import (
	"os"

	"github.com/ethpandaops/snapcheck/internal/testing"
	"github.com/ethpandaops/snapcheck/internal/testing/check"
	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [check...]",
	Short: "Run the check battery or individual checks",
	Long: `Run checks against the configured snapshot.

Without arguments the whole battery runs in order and a single all_tests.json report is
written. With check names each check runs with debug logging and writes its own report.

Examples:
  snapcheck run
  snapcheck run game_window stash --snapshot dumps/hideout.yaml`,
	ValidArgs: check.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			Logger.SetLevel(logrus.DebugLevel)
		}

		h := newHarness(Logger, appConfig, os.Stdout)

		var (
			outcomes []*outcome.Outcome
			err      error
		)

		if len(args) == 0 {
			outcomes, err = h.runAll(cmd.Context())
		} else {
			outcomes, err = h.runChecks(cmd.Context(), args)
		}

		if len(outcomes) > 0 {
			h.printResults()
			h.out.PrintVerdict(outcomes)
		}

		if err != nil {
			return err
		}

		if testing.Failed(outcomes) {
			return errChecksFailed
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
