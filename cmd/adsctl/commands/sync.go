package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run a full sync pass for the active profile",
	Long:  "Runs one sync pass inline, bypassing the job queue. Fails if a pass is already running.",
	RunE:  runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	result, err := deps.Sync.SyncCampaignData(cmd.Context())
	if printErr := printJSON(cmd.OutOrStdout(), result); printErr != nil {
		return printErr
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	return nil
}
