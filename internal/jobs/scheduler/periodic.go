package scheduler

import (
	datasync "adsync/internal/datasync/processor"
	"adsync/internal/jobs"
	"context"
	"errors"
	"time"
)

type SyncEnqueuer interface {
	EnqueueSync(ctx context.Context, profileID string) error
}

type RulesEnqueuer interface {
	EnqueueRulesRun(ctx context.Context) error
}

// SyncJob queues a sync pass for the active profile every interval
type SyncJob struct {
	enqueuer SyncEnqueuer
	interval time.Duration
}

func NewSyncJob(enqueuer SyncEnqueuer, interval time.Duration) *SyncJob {
	return &SyncJob{enqueuer: enqueuer, interval: interval}
}

func (j *SyncJob) Name() string            { return "periodic_sync" }
func (j *SyncJob) Schedule() time.Duration { return j.interval }

// Run treats an already queued pass as done
func (j *SyncJob) Run(ctx context.Context) error {
	if err := j.enqueuer.EnqueueSync(ctx, ""); err != nil && !errors.Is(err, datasync.ErrAlreadySyncing) {
		return err
	}
	return nil
}

// RulesJob queues a rules evaluation every interval
type RulesJob struct {
	enqueuer RulesEnqueuer
	interval time.Duration
}

func NewRulesJob(enqueuer RulesEnqueuer, interval time.Duration) *RulesJob {
	return &RulesJob{enqueuer: enqueuer, interval: interval}
}

func (j *RulesJob) Name() string            { return "periodic_rules" }
func (j *RulesJob) Schedule() time.Duration { return j.interval }

func (j *RulesJob) Run(ctx context.Context) error {
	if err := j.enqueuer.EnqueueRulesRun(ctx); err != nil && !errors.Is(err, jobs.ErrRulesRunQueued) {
		return err
	}
	return nil
}
