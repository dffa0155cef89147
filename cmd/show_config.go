package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showConfigCmd = &cobra.Command{
	Use:   "show-config",
	Short: "Display current environment configuration",
	Long:  `Shows the current configuration loaded from environment variables, .env file and flags.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println(appConfig.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showConfigCmd)
}
