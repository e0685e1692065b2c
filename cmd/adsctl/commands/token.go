package commands

import (
	"fmt"
	"time"

	authProcessor "adsync/internal/auth/processor"

	"github.com/spf13/cobra"
)

var (
	tokenUser string
	tokenTTL  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Dashboard token operations",
}

var tokenIssueCmd = &cobra.Command{
	Use:         "issue",
	Short:       "Issue a dashboard bearer token",
	Annotations: map[string]string{skipDependencies: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		auth := authProcessor.New(cfg.Auth.JWTSecret, logger)
		token, err := auth.IssueToken(cmd.Context(), tokenUser, tokenTTL)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenIssueCmd.Flags().StringVarP(&tokenUser, "user", "u", "", "User ID to issue the token for (required)")
	tokenIssueCmd.Flags().DurationVar(&tokenTTL, "ttl", authProcessor.DefaultTokenTTL, "Token lifetime")
	tokenIssueCmd.MarkFlagRequired("user")

	tokenCmd.AddCommand(tokenIssueCmd)
	rootCmd.AddCommand(tokenCmd)
}
