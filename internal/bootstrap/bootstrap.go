package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"adsync/internal/config"
	"adsync/internal/observability"
	"adsync/internal/store"

	agentHandler "adsync/internal/agent/handler"
	agentProcessor "adsync/internal/agent/processor"
	"adsync/internal/audit"
	auditHandler "adsync/internal/audit/handler"
	authHandler "adsync/internal/auth/handler"
	authProcessor "adsync/internal/auth/processor"
	"adsync/internal/clients/amazonads"
	kafkaClient "adsync/internal/clients/kafka"
	redisClient "adsync/internal/clients/redis"
	credentialsHandler "adsync/internal/credentials/handler"
	credentialsProcessor "adsync/internal/credentials/processor"
	syncHandler "adsync/internal/datasync/handler"
	syncProcessor "adsync/internal/datasync/processor"
	"adsync/internal/jobs"
	mutationHandler "adsync/internal/mutation/handler"
	mutationProcessor "adsync/internal/mutation/processor"
	"adsync/internal/ratelimit"
	rulesHandler "adsync/internal/rules/handler"
	rulesProcessor "adsync/internal/rules/processor"
	settingsHandler "adsync/internal/settings/handler"
	settingsProcessor "adsync/internal/settings/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Shared remote API gate; every Amazon client draws from this one bucket
	Limiter *ratelimit.TokenBucket

	// Processors
	Audit       *audit.Logger
	Credentials credentialsProcessor.CredentialProcessor
	Mutations   mutationProcessor.MutationProcessor
	Sync        syncProcessor.SyncProcessor
	Rules       rulesProcessor.RuleProcessor
	AgentKeys   agentProcessor.KeyProcessor
	Settings    settingsProcessor.SettingsProcessor
	Auth        authProcessor.AuthProcessor

	// Handlers
	AuthHandler        authHandler.Handler
	AgentHandler       agentHandler.Handler
	AuditHandler       auditHandler.Handler
	CredentialsHandler credentialsHandler.Handler
	MutationHandler    mutationHandler.Handler
	SyncHandler        syncHandler.Handler
	RulesHandler       rulesHandler.Handler
	SettingsHandler    settingsHandler.Handler
	AgentRateLimiter   *ratelimit.Service

	// Clients (for cleanup)
	Jobs          *jobs.Client
	Redis         *redisClient.Client
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// Kafka is optional; publishers stay nil interfaces when it is off
	var auditPublisher audit.EventPublisher
	var syncPublisher syncProcessor.EventPublisher
	if cfg.Kafka.Enabled {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: strings.Split(cfg.Kafka.Brokers, ","),
			Topic:   cfg.Kafka.Topic,
		}, logger)
		auditPublisher = deps.KafkaProducer
		syncPublisher = deps.KafkaProducer
	}

	var enqueuer syncProcessor.Enqueuer
	if cfg.Jobs.RedisAddr != "" {
		deps.Jobs = jobs.NewClient(cfg.Jobs.RedisAddr, cfg.Sync.StaleAfter, logger)
		enqueuer = deps.Jobs
	}

	deps.Audit = audit.New(&deps.Store, auditPublisher, logger)
	deps.Limiter = ratelimit.NewTokenBucket(cfg.Amazon.Burst, cfg.Amazon.RatePerSecond)

	// Amazon account access and the active-profile client
	oauth := amazonads.NewOAuthClient(
		cfg.Amazon.ClientID,
		cfg.Amazon.ClientSecret,
		cfg.Amazon.RedirectURI,
		amazonads.Region(cfg.Amazon.Region),
		logger,
	)
	deps.Credentials = credentialsProcessor.New(&deps.Store, oauth, deps.Limiter, credentialsProcessor.Config{
		ClientID: cfg.Amazon.ClientID,
		Region:   cfg.Amazon.Region,
		BaseURL:  cfg.Amazon.BaseURL,
	}, logger)

	// Mutation pipeline
	deps.Mutations = mutationProcessor.New(&deps.Store, deps.Audit, deps.connectMutations, logger)

	// Sync engine
	syncConfig := syncProcessor.DefaultConfig()
	syncConfig.ConflictWindow = cfg.Sync.ConflictWindow
	syncConfig.MetricsLookbackDays = cfg.Sync.MetricsLookbackDays
	syncConfig.StaleAfter = cfg.Sync.StaleAfter
	deps.Sync = syncProcessor.New(&deps.Store, deps.connectSync, enqueuer, deps.Audit, syncPublisher, syncConfig, logger)

	// Rules, agent keys, settings and dashboard auth
	deps.Rules = rulesProcessor.New(&deps.Store, &deps.Mutations, &deps.Credentials, deps.Audit, logger)
	deps.AgentKeys = agentProcessor.New(&deps.Store, deps.Audit, logger)
	deps.Settings = settingsProcessor.New(&deps.Store, deps.Audit, logger)
	deps.Auth = authProcessor.New(cfg.Auth.JWTSecret, logger)

	// Handlers
	deps.AuthHandler = authHandler.New(&deps.Auth, logger)
	deps.AgentHandler = agentHandler.New(&deps.AgentKeys, &deps.Store, &deps.Store, &deps.Credentials, logger)
	deps.AuditHandler = auditHandler.New(deps.Audit, logger)
	deps.CredentialsHandler = credentialsHandler.New(&deps.Credentials, logger)
	deps.MutationHandler = mutationHandler.New(&deps.Mutations, logger)
	deps.SyncHandler = syncHandler.New(&deps.Sync, logger)
	deps.RulesHandler = rulesHandler.New(&deps.Rules, logger)
	deps.SettingsHandler = settingsHandler.New(&deps.Settings, &deps.AgentKeys, logger)
	deps.AgentRateLimiter = ratelimit.NewService(deps.Redis, &deps.Store, cfg.Agent.RequestsPerMinute, logger)

	logger.Info(ctx, "dependencies initialized",
		observability.Field{Key: "kafka_enabled", Value: cfg.Kafka.Enabled},
		observability.Field{Key: "redis_enabled", Value: deps.Redis.IsEnabled()},
		observability.Field{Key: "jobs_enabled", Value: deps.Jobs != nil},
	)
	return deps, nil
}

func (d *Dependencies) connectMutations(ctx context.Context) (mutationProcessor.Remote, error) {
	client, err := d.Credentials.Client(ctx)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (d *Dependencies) connectSync(ctx context.Context) (syncProcessor.Remote, error) {
	client, err := d.Credentials.Client(ctx)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.Jobs != nil {
		if err := d.Jobs.Close(); err != nil {
			d.Logger.WarnWithError(ctx, "failed to close job client", err)
		}
	}
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.WarnWithError(ctx, "failed to close kafka producer", err)
		}
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.WarnWithError(ctx, "failed to close redis", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.WarnWithError(ctx, "failed to close database", err)
	}
}
