package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeSyncCampaignData = "sync:campaign_data"
	TypeRulesRunAll      = "rules:run_all"
)

// Queue names
const (
	QueueHigh    = "high"
	QueueDefault = "default"
)

// Queues is the asynq queue priority map used by the worker
var Queues = map[string]int{
	QueueHigh:    6,
	QueueDefault: 3,
}

// SyncJobPayload identifies the profile a sync pass was requested for.
// An empty ProfileID means the active profile.
type SyncJobPayload struct {
	ProfileID string `json:"profile_id"`
}

// NewSyncTask creates a sync task that stays unique per profile for uniqueFor
func NewSyncTask(payload SyncJobPayload, uniqueFor time.Duration) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	opts := []asynq.Option{asynq.Queue(QueueHigh), asynq.MaxRetry(2), asynq.Timeout(uniqueFor)}
	if uniqueFor > 0 {
		opts = append(opts, asynq.Unique(uniqueFor))
	}
	return asynq.NewTask(TypeSyncCampaignData, data, opts...), nil
}

// NewRulesRunAllTask creates a task that evaluates every enabled rule
func NewRulesRunAllTask(uniqueFor time.Duration) *asynq.Task {
	opts := []asynq.Option{asynq.Queue(QueueDefault), asynq.MaxRetry(0)}
	if uniqueFor > 0 {
		opts = append(opts, asynq.Unique(uniqueFor))
	}
	return asynq.NewTask(TypeRulesRunAll, nil, opts...)
}
