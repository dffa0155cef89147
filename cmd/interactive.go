package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ethpandaops/snapcheck/internal/trigger"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive mode",
	Long:  `Shows one button per check; each selection runs that check once.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runInteractive(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(ctx context.Context) error {
	fmt.Println("Snapcheck - Interactive Mode")
	fmt.Println("============================")
	fmt.Println()

	h := newHarness(Logger, appConfig, os.Stdout)

	tbl, err := h.commands()
	if err != nil {
		return err
	}

	menu := trigger.NewMenu(tbl)

	for {
		if err := menu.Show(ctx); err != nil {
			if errors.Is(err, trigger.ErrExit) {
				fmt.Println("Goodbye!")
				return nil
			}

			h.out.PrintError("Check run failed", err)
		}

		fmt.Println()
	}
}
