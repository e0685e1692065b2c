package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"adsync/internal/bootstrap"
	"adsync/internal/config"
	"adsync/internal/jobs"
	"adsync/internal/jobs/scheduler"
	"adsync/internal/jobs/workers"
	"adsync/internal/observability"

	"github.com/hibiken/asynq"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}

	logger.Info(ctx, "Starting background worker server...")

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()
	if deps.Jobs == nil {
		logger.Fatal(ctx, "worker requires JOBS_REDIS_ADDR", fmt.Errorf("job client not configured"))
	}

	syncWorker := workers.NewSyncWorker(&deps.Sync, logger)
	rulesWorker := workers.NewRulesWorker(&deps.Rules, logger)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.Jobs.RedisAddr},
		asynq.Config{
			Concurrency: cfg.Jobs.Concurrency,
			Queues:      jobs.Queues,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	mux := asynq.NewServeMux()
	workers.Register(mux, syncWorker, rulesWorker)

	// Periodic enqueueing; task uniqueness keeps multiple worker replicas from doubling up
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched := scheduler.New(logger)
	sched.Register(scheduler.NewSyncJob(deps.Jobs, cfg.Jobs.SyncInterval), true)
	sched.Register(scheduler.NewRulesJob(deps.Jobs, cfg.Jobs.RulesInterval), false)
	go func() {
		_ = sched.Start(runCtx)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Jobs.RedisAddr))
		if err := srv.Run(mux); err != nil {
			logger.Fatal(ctx, "failed to run worker server", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	cancel()
	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
