package commands

import (
	"fmt"

	"adsync/internal/audit"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	agentKeyName string
	agentKeyID   string
)

var agentKeyCmd = &cobra.Command{
	Use:   "agent-key",
	Short: "Manage agent API keys",
}

var agentKeyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an agent key and print it once",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := deps.AgentKeys.CreateKey(cmd.Context(), audit.SystemActor(), agentKeyName)
		if err != nil {
			return fmt.Errorf("create key: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), key)
	},
}

var agentKeyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List agent keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := deps.AgentKeys.ListKeys(cmd.Context())
		if err != nil {
			return fmt.Errorf("list keys: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), keys)
	},
}

var agentKeyRevokeCmd = &cobra.Command{
	Use:   "revoke",
	Short: "Revoke an agent key",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(agentKeyID)
		if err != nil {
			return fmt.Errorf("invalid key ID: %w", err)
		}
		key, err := deps.AgentKeys.RevokeKey(cmd.Context(), audit.SystemActor(), id)
		if err != nil {
			return fmt.Errorf("revoke key: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), key)
	},
}

func init() {
	agentKeyCreateCmd.Flags().StringVarP(&agentKeyName, "name", "n", "", "Key name (required)")
	agentKeyCreateCmd.MarkFlagRequired("name")
	agentKeyRevokeCmd.Flags().StringVar(&agentKeyID, "id", "", "Key ID (required)")
	agentKeyRevokeCmd.MarkFlagRequired("id")

	agentKeyCmd.AddCommand(agentKeyCreateCmd, agentKeyListCmd, agentKeyRevokeCmd)
	rootCmd.AddCommand(agentKeyCmd)
}
