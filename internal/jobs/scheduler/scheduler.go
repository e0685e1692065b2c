package scheduler

import (
	"adsync/internal/observability"
	"context"
	"fmt"
	"sync"
	"time"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
	// Schedule returns the interval between runs
	Schedule() time.Duration
}

type entry struct {
	job        Job
	runOnStart bool
}

// Scheduler runs registered jobs on fixed intervals
type Scheduler struct {
	entries []entry
	logger  *observability.Logger
}

// New creates a new scheduler
func New(logger *observability.Logger) *Scheduler {
	return &Scheduler{
		entries: make([]entry, 0),
		logger:  logger,
	}
}

// Register adds a job to the scheduler. runOnStart runs it once before the first tick.
func (s *Scheduler) Register(job Job, runOnStart bool) {
	if job.Schedule() <= 0 {
		s.logger.Warn(context.Background(), fmt.Sprintf("Skipping scheduled job %s: interval disabled", job.Name()))
		return
	}
	s.entries = append(s.entries, entry{job: job, runOnStart: runOnStart})
	s.logger.Info(context.Background(), fmt.Sprintf("Registered scheduled job: %s (interval: %s)",
		job.Name(), job.Schedule()))
}

// Start runs all scheduled jobs until ctx is cancelled
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("Starting scheduler with %d jobs", len(s.entries)))

	var wg sync.WaitGroup
	for _, e := range s.entries {
		wg.Add(1)
		go func(e entry) {
			defer wg.Done()
			s.runJob(ctx, e)
		}(e)
	}

	<-ctx.Done()
	wg.Wait()
	s.logger.Info(context.Background(), "Scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) runJob(ctx context.Context, e entry) {
	job := e.job
	jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})

	if e.runOnStart {
		s.executeJob(jobCtx, job)
	}

	ticker := time.NewTicker(job.Schedule())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.executeJob(jobCtx, job)
		}
	}
}

// executeJob executes a job and logs timing
func (s *Scheduler) executeJob(ctx context.Context, job Job) {
	start := time.Now()

	err := job.Run(ctx)
	duration := time.Since(start)

	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("Job %s failed after %v", job.Name(), duration), err)
		return
	}

	s.logger.Info(ctx, fmt.Sprintf("Job %s completed in %v", job.Name(), duration))
}
