package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	datasync "adsync/internal/datasync/processor"
	"adsync/internal/observability"

	"github.com/hibiken/asynq"
)

var ErrRulesRunQueued = errors.New("rules run already queued")

// Client handles enqueueing background jobs
type Client struct {
	client    *asynq.Client
	uniqueFor time.Duration
	logger    *observability.Logger
}

// NewClient creates a new job client. uniqueFor bounds how long a queued
// task blocks an identical one.
func NewClient(redisAddr string, uniqueFor time.Duration, logger *observability.Logger) *Client {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	return &Client{
		client:    client,
		uniqueFor: uniqueFor,
		logger:    logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueSync queues a sync pass. A pass already queued for the profile
// yields datasync.ErrAlreadySyncing.
func (c *Client) EnqueueSync(ctx context.Context, profileID string) error {
	task, err := NewSyncTask(SyncJobPayload{ProfileID: profileID}, c.uniqueFor)
	if err != nil {
		c.logger.Error(ctx, "failed to create sync task", err)
		return fmt.Errorf("failed to create sync task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			c.logger.Info(ctx, "sync task already queued")
			return datasync.ErrAlreadySyncing
		}
		c.logger.Error(ctx, "failed to enqueue sync task", err)
		return fmt.Errorf("failed to enqueue sync task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued sync task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}

// EnqueueRulesRun queues an evaluation of every enabled rule
func (c *Client) EnqueueRulesRun(ctx context.Context) error {
	info, err := c.client.EnqueueContext(ctx, NewRulesRunAllTask(c.uniqueFor))
	if err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			return ErrRulesRunQueued
		}
		c.logger.Error(ctx, "failed to enqueue rules task", err)
		return fmt.Errorf("failed to enqueue rules task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued rules task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
