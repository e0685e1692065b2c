package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"adsync/internal/audit"
	"adsync/internal/clients/amazonads"
	"adsync/internal/clients/kafka"
	"adsync/internal/observability"
	"adsync/internal/store"
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrAlreadySyncing = errors.New("sync already in progress")
	ErrNotConfigured  = errors.New("amazon ads is not configured")
)

const publishTimeout = 2 * time.Second

type SyncStore interface {
	GetSyncState(ctx context.Context, profileID string) (store.SyncState, error)
	TryStartSync(ctx context.Context, profileID string, staleBefore time.Time) (bool, error)
	CompleteSync(ctx context.Context, profileID string, at time.Time) error
	FailSync(ctx context.Context, profileID, message string) error
	PersistSyncSnapshot(ctx context.Context, snap store.SyncSnapshot, syncedAt, cutoff time.Time) (store.PersistStats, error)
	UpsertCampaignMetrics(ctx context.Context, rows []store.MetricRow) (store.MetricUpsertResult, error)
	UpsertKeywordMetrics(ctx context.Context, rows []store.MetricRow) (store.MetricUpsertResult, error)
	UpsertProductTargetMetrics(ctx context.Context, rows []store.MetricRow) (store.MetricUpsertResult, error)
}

// Remote is the read surface of the advertising API used by a sync pass
type Remote interface {
	ProfileID() string
	FetchAllCampaigns(ctx context.Context) ([]amazonads.Campaign, error)
	FetchAdGroups(ctx context.Context, t amazonads.CampaignType, campaignID string) ([]amazonads.AdGroup, error)
	FetchKeywords(ctx context.Context, t amazonads.CampaignType, adGroupID string) ([]amazonads.Keyword, error)
	FetchNegativeKeywords(ctx context.Context, t amazonads.CampaignType, adGroupID string) ([]amazonads.NegativeKeyword, error)
	FetchCampaignNegativeKeywords(ctx context.Context, t amazonads.CampaignType, campaignID string) ([]amazonads.NegativeKeyword, error)
	FetchTargets(ctx context.Context, t amazonads.CampaignType, adGroupID string) ([]amazonads.Target, error)
	FetchMetrics(ctx context.Context, kind amazonads.ReportKind, start, end time.Time) ([]amazonads.MetricRow, error)
}

// ConnectFunc opens the remote client for the active profile
type ConnectFunc func(ctx context.Context) (Remote, error)

// Enqueuer hands a sync pass to the background worker
type Enqueuer interface {
	EnqueueSync(ctx context.Context, profileID string) error
}

type AuditRecorder interface {
	Record(ctx context.Context, entry audit.Entry) (store.AuditEntry, error)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Config tunes a sync pass
type Config struct {
	// ConflictWindow is how long after a local push the pushed fields win over fetched ones
	ConflictWindow      time.Duration
	MetricsLookbackDays int
	// StaleAfter is when a syncing flag is considered abandoned
	StaleAfter       time.Duration
	FetchConcurrency int
}

func DefaultConfig() Config {
	return Config{
		ConflictWindow:      5 * time.Minute,
		MetricsLookbackDays: 30,
		StaleAfter:          2 * time.Hour,
		FetchConcurrency:    4,
	}
}

// Stats counts what one pass wrote
type Stats struct {
	Campaigns            int `json:"campaigns"`
	AdGroups             int `json:"adGroups"`
	Keywords             int `json:"keywords"`
	NegativeKeywords     int `json:"negativeKeywords"`
	ProductTargets       int `json:"productTargets"`
	CampaignMetrics      int `json:"campaignMetrics"`
	KeywordMetrics       int `json:"keywordMetrics"`
	ProductTargetMetrics int `json:"productTargetMetrics"`
	Deferred             int `json:"deferred"`
	SkippedMetrics       int `json:"skippedMetrics"`
	FetchWarnings        int `json:"fetchWarnings"`
}

// Result is returned for every pass, successful or not
type Result struct {
	Success bool   `json:"success"`
	Stats   *Stats `json:"stats,omitempty"`
	Error   string `json:"error,omitempty"`
}

type SyncProcessor struct {
	store     SyncStore
	connect   ConnectFunc
	enqueuer  Enqueuer
	audit     AuditRecorder
	publisher EventPublisher
	config    Config
	logger    *observability.Logger
	now       func() time.Time
}

// New creates a sync processor. enqueuer and publisher may be nil.
func New(store SyncStore, connect ConnectFunc, enqueuer Enqueuer, audit AuditRecorder, publisher EventPublisher, config Config, logger *observability.Logger) SyncProcessor {
	if config.FetchConcurrency <= 0 {
		config.FetchConcurrency = DefaultConfig().FetchConcurrency
	}
	return SyncProcessor{
		store:     store,
		connect:   connect,
		enqueuer:  enqueuer,
		audit:     audit,
		publisher: publisher,
		config:    config,
		logger:    logger,
		now:       time.Now,
	}
}

// SyncCampaignData runs one full pass: fetch every entity, persist them in one transaction,
// then refresh metrics. A second call while a pass holds the syncing flag gets ErrAlreadySyncing.
func (p *SyncProcessor) SyncCampaignData(ctx context.Context) (Result, error) {
	remote, err := p.connect(ctx)
	if err != nil {
		return Result{Error: err.Error()}, errors.Join(ErrNotConfigured, err)
	}

	profileID := remote.ProfileID()
	ctx = observability.WithFields(ctx, observability.Field{Key: "profile_id", Value: profileID})

	started, err := p.store.TryStartSync(ctx, profileID, p.now().Add(-p.config.StaleAfter))
	if err != nil {
		return Result{Error: err.Error()}, err
	}
	if !started {
		p.logger.Info(ctx, "sync rejected, another pass is running")
		return Result{Error: ErrAlreadySyncing.Error()}, ErrAlreadySyncing
	}

	startedAt := p.now()
	p.logger.Info(ctx, "sync started")

	stats, err := p.run(ctx, remote)
	if err != nil {
		p.fail(ctx, profileID, err)
		return Result{Error: err.Error()}, err
	}

	completedAt := p.now()
	if err := p.store.CompleteSync(ctx, profileID, completedAt); err != nil {
		err = fmt.Errorf("failed to mark sync completed: %w", err)
		p.fail(ctx, profileID, err)
		return Result{Stats: &stats, Error: err.Error()}, err
	}

	p.logger.Info(ctx, "sync completed",
		observability.Field{Key: "campaigns", Value: stats.Campaigns},
		observability.Field{Key: "ad_groups", Value: stats.AdGroups},
		observability.Field{Key: "keywords", Value: stats.Keywords},
		observability.Field{Key: "negative_keywords", Value: stats.NegativeKeywords},
		observability.Field{Key: "product_targets", Value: stats.ProductTargets},
		observability.Field{Key: "deferred", Value: stats.Deferred},
		observability.Field{Key: "duration_ms", Value: completedAt.Sub(startedAt).Milliseconds()},
	)
	p.publish(ctx, kafka.EventSyncCompleted, profileID, map[string]interface{}{
		"campaigns":              stats.Campaigns,
		"ad_groups":              stats.AdGroups,
		"keywords":               stats.Keywords,
		"negative_keywords":      stats.NegativeKeywords,
		"product_targets":        stats.ProductTargets,
		"campaign_metrics":       stats.CampaignMetrics,
		"keyword_metrics":        stats.KeywordMetrics,
		"product_target_metrics": stats.ProductTargetMetrics,
		"deferred":               stats.Deferred,
		"duration_ms":            completedAt.Sub(startedAt).Milliseconds(),
	})

	return Result{Success: true, Stats: &stats}, nil
}

// run executes the three phases in order. Nothing is written before the fetch phase ends.
func (p *SyncProcessor) run(ctx context.Context, remote Remote) (Stats, error) {
	var stats Stats

	fetchStart := p.now()
	snap, warnings, err := p.fetchEntities(ctx, remote)
	if err != nil {
		return stats, err
	}
	stats.FetchWarnings = warnings

	syncedAt := p.now()
	persisted, err := p.store.PersistSyncSnapshot(ctx, snap, syncedAt, p.conflictCutoff(fetchStart, syncedAt))
	if err != nil {
		return stats, err
	}
	stats.Campaigns = persisted.Campaigns
	stats.AdGroups = persisted.AdGroups
	stats.Keywords = persisted.Keywords
	stats.NegativeKeywords = persisted.NegativeKeywords
	stats.ProductTargets = persisted.ProductTargets
	stats.Deferred = persisted.Deferred
	if persisted.Deferred > 0 {
		p.logger.Info(ctx, "kept recently pushed values over fetched ones",
			observability.Field{Key: "deferred", Value: persisted.Deferred})
	}

	if err := p.syncMetrics(ctx, remote, &stats); err != nil {
		return stats, err
	}
	return stats, nil
}

// conflictCutoff is the earlier of now minus the conflict window and the start of the fetch.
// A push after the fetch started may not be reflected in what was fetched, however old it is.
func (p *SyncProcessor) conflictCutoff(fetchStart, now time.Time) time.Time {
	cutoff := now.Add(-p.config.ConflictWindow)
	if fetchStart.Before(cutoff) {
		return fetchStart
	}
	return cutoff
}

// fail releases the syncing flag as failed. The flag must be released even when the
// caller's context is gone.
func (p *SyncProcessor) fail(ctx context.Context, profileID string, err error) {
	cleanupCtx := context.WithoutCancel(ctx)
	if failErr := p.store.FailSync(cleanupCtx, profileID, err.Error()); failErr != nil {
		p.logger.Error(ctx, "failed to record sync failure", failErr)
	}
	p.logger.Error(ctx, "sync failed", err)
	p.publish(cleanupCtx, kafka.EventSyncFailed, profileID, map[string]interface{}{"error": err.Error()})
}

// RequestSync queues a pass on the background worker unless one is already running
func (p *SyncProcessor) RequestSync(ctx context.Context, actor audit.Actor) error {
	if p.enqueuer == nil {
		return errors.New("background jobs are not configured")
	}

	remote, err := p.connect(ctx)
	if err != nil {
		return errors.Join(ErrNotConfigured, err)
	}
	profileID := remote.ProfileID()

	state, err := p.GetStatus(ctx, profileID)
	if err != nil {
		return err
	}
	if p.isRunning(state) {
		return ErrAlreadySyncing
	}

	entry := audit.Entry{
		Actor:      actor,
		ActionType: audit.ActionSyncTriggered,
		EntityType: audit.EntityProfile,
		EntityID:   profileID,
	}
	if err := p.enqueuer.EnqueueSync(ctx, profileID); err != nil {
		entry.Error = err.Error()
		p.recordAudit(ctx, entry)
		return err
	}

	entry.Success = true
	p.recordAudit(ctx, entry)
	return nil
}

// GetStatus returns the stored sync state, or an idle state when the profile never synced
func (p *SyncProcessor) GetStatus(ctx context.Context, profileID string) (store.SyncState, error) {
	state, err := p.store.GetSyncState(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.SyncState{ProfileID: profileID, SyncStatus: store.SyncStatusIdle}, nil
		}
		return store.SyncState{}, err
	}
	return state, nil
}

// ActiveStatus resolves the active profile and returns its sync state
func (p *SyncProcessor) ActiveStatus(ctx context.Context) (store.SyncState, error) {
	remote, err := p.connect(ctx)
	if err != nil {
		return store.SyncState{}, errors.Join(ErrNotConfigured, err)
	}
	return p.GetStatus(ctx, remote.ProfileID())
}

func (p *SyncProcessor) isRunning(state store.SyncState) bool {
	return state.SyncStatus == store.SyncStatusSyncing && state.UpdatedAt.After(p.now().Add(-p.config.StaleAfter))
}

func (p *SyncProcessor) recordAudit(ctx context.Context, entry audit.Entry) {
	if p.audit == nil {
		return
	}
	if _, err := p.audit.Record(ctx, entry); err != nil {
		p.logger.Error(ctx, "failed to write audit entry for sync trigger", err)
	}
}

// publish is best-effort; sync_states is the record of truth
func (p *SyncProcessor) publish(ctx context.Context, eventType, profileID string, data map[string]interface{}) {
	if p.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.publisher.PublishEvent(ctx, kafka.NewEvent(eventType, profileID, data)); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish sync event", err)
	}
}
