package workers

//go:generate go run go.uber.org/mock/mockgen@latest -source=workers.go -destination=mocks_test.go -package=workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	datasync "adsync/internal/datasync/processor"
	"adsync/internal/jobs"
	"adsync/internal/observability"
	rules "adsync/internal/rules/processor"

	"github.com/hibiken/asynq"
)

type Syncer interface {
	SyncCampaignData(ctx context.Context) (datasync.Result, error)
}

type RuleRunner interface {
	RunAllRules(ctx context.Context) ([]rules.RunResult, error)
}

// SyncWorker handles sync:campaign_data tasks
type SyncWorker struct {
	syncer Syncer
	logger *observability.Logger
}

// NewSyncWorker creates a new sync worker
func NewSyncWorker(syncer Syncer, logger *observability.Logger) *SyncWorker {
	return &SyncWorker{
		syncer: syncer,
		logger: logger,
	}
}

// ProcessSyncTask runs one sync pass. Passes that cannot succeed on retry are not retried.
func (w *SyncWorker) ProcessSyncTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.SyncJobPayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			w.logger.Error(ctx, "failed to unmarshal sync job payload", err)
			return fmt.Errorf("failed to unmarshal sync job payload: %v: %w", err, asynq.SkipRetry)
		}
	}
	if payload.ProfileID != "" {
		ctx = observability.WithFields(ctx, observability.Field{Key: "requested_profile_id", Value: payload.ProfileID})
	}

	result, err := w.syncer.SyncCampaignData(ctx)
	if err != nil {
		switch {
		case errors.Is(err, datasync.ErrAlreadySyncing):
			w.logger.Info(ctx, "sync already in progress, dropping task")
			return nil
		case errors.Is(err, datasync.ErrNotConfigured):
			w.logger.WarnWithError(ctx, "sync skipped, amazon ads is not configured", err)
			return fmt.Errorf("sync not configured: %v: %w", err, asynq.SkipRetry)
		}
		w.logger.Error(ctx, "sync task failed", err)
		return fmt.Errorf("sync failed: %w", err)
	}

	if result.Stats != nil {
		w.logger.Info(ctx, "sync task completed",
			observability.Field{Key: "campaigns", Value: result.Stats.Campaigns},
			observability.Field{Key: "keywords", Value: result.Stats.Keywords},
			observability.Field{Key: "deferred", Value: result.Stats.Deferred},
		)
	}
	return nil
}

// RulesWorker handles rules:run_all tasks
type RulesWorker struct {
	runner RuleRunner
	logger *observability.Logger
}

// NewRulesWorker creates a new rules worker
func NewRulesWorker(runner RuleRunner, logger *observability.Logger) *RulesWorker {
	return &RulesWorker{
		runner: runner,
		logger: logger,
	}
}

// ProcessRulesTask evaluates every enabled rule
func (w *RulesWorker) ProcessRulesTask(ctx context.Context, task *asynq.Task) error {
	results, err := w.runner.RunAllRules(ctx)
	if err != nil {
		if errors.Is(err, rules.ErrNotConfigured) {
			w.logger.WarnWithError(ctx, "rules skipped, amazon ads is not configured", err)
			return fmt.Errorf("rules not configured: %v: %w", err, asynq.SkipRetry)
		}
		w.logger.Error(ctx, "rules task failed", err)
		return fmt.Errorf("failed to run rules: %w", err)
	}

	var successes, errored int
	for _, r := range results {
		successes += r.Successes
		if r.Error != "" {
			errored++
		}
	}
	w.logger.Info(ctx, "rules task completed",
		observability.Field{Key: "rules", Value: len(results)},
		observability.Field{Key: "successes", Value: successes},
		observability.Field{Key: "errored_rules", Value: errored},
	)
	return nil
}

// Register wires every task handler into mux
func Register(mux *asynq.ServeMux, syncWorker *SyncWorker, rulesWorker *RulesWorker) {
	mux.HandleFunc(jobs.TypeSyncCampaignData, syncWorker.ProcessSyncTask)
	mux.HandleFunc(jobs.TypeRulesRunAll, rulesWorker.ProcessRulesTask)
}
