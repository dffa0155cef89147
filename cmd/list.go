package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the check battery in run order",
	Long:  `Lists every check in battery order with the fixture file it reads.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		h := newHarness(Logger, appConfig, os.Stdout)
		h.out.PrintFixtures(h.fixtureInventory())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
