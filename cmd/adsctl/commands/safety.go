package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var safetyCmd = &cobra.Command{
	Use:   "safety",
	Short: "Safety limit operations",
}

var safetyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active safety limits",
	RunE: func(cmd *cobra.Command, args []string) error {
		limits, err := deps.Settings.GetSafetyLimits(cmd.Context())
		if err != nil {
			return fmt.Errorf("get safety limits: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), limits)
	},
}

func init() {
	safetyCmd.AddCommand(safetyShowCmd)
	rootCmd.AddCommand(safetyCmd)
}
