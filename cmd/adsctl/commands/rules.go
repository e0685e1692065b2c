package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var rulesRunID string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Automation rule operations",
}

var rulesRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate enabled rules now",
	Long:  "Evaluates every enabled rule, or only the rule given by --id, and prints the per-entity outcomes.",
	RunE:  runRules,
}

func init() {
	rulesRunCmd.Flags().StringVar(&rulesRunID, "id", "", "Rule ID (optional, defaults to all enabled rules)")
	rulesCmd.AddCommand(rulesRunCmd)
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if rulesRunID == "" {
		results, err := deps.Rules.RunAllRules(ctx)
		if err != nil {
			return fmt.Errorf("run rules: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), results)
	}

	id, err := uuid.Parse(rulesRunID)
	if err != nil {
		return fmt.Errorf("invalid rule ID: %w", err)
	}
	result, err := deps.Rules.RunRule(ctx, id)
	if err != nil {
		return fmt.Errorf("run rule: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), result)
}
