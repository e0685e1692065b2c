package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"adsync/internal/bootstrap"
	"adsync/internal/config"
	"adsync/internal/observability"

	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	deps   *bootstrap.Dependencies
	logger *observability.Logger
)

var rootCmd = &cobra.Command{
	Use:   "adsctl",
	Short: "Operator CLI for the ads sync server",
	Long: `adsctl runs sync passes and rule evaluations inline, manages agent keys,
inspects safety limits, issues dashboard tokens and tails the event stream.
It reads the same environment as the API server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = observability.NewLogger()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if !needsDependencies(cmd) {
			return nil
		}
		deps, err = bootstrap.Initialize(cmd.Context(), cfg, logger)
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if deps != nil {
			deps.Cleanup()
		}
	},
}

const skipDependencies = "skip-dependencies"

// needsDependencies is false for commands annotated to run on config alone
func needsDependencies(cmd *cobra.Command) bool {
	_, skip := cmd.Annotations[skipDependencies]
	return !skip
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
