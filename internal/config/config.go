package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Amazon   AmazonConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Jobs     JobsConfig
	Agent    AgentConfig
	Sync     SyncConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

// AuthConfig holds dashboard authentication configuration
type AuthConfig struct {
	JWTSecret string
}

// AmazonConfig holds Amazon Ads API credentials and client tuning
type AmazonConfig struct {
	ClientID      string
	ClientSecret  string
	RedirectURI   string
	Region        string
	BaseURL       string // overrides the region host, used against sandboxes
	Burst         int
	RatePerSecond float64
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Enabled bool
	Brokers string
	Topic   string
}

// JobsConfig holds asynq worker and scheduler settings
type JobsConfig struct {
	RedisAddr     string
	Concurrency   int
	SyncInterval  time.Duration
	RulesInterval time.Duration
}

// AgentConfig holds limits for the external agent API
type AgentConfig struct {
	RequestsPerMinute int
}

// SyncConfig holds sync engine tuning
type SyncConfig struct {
	ConflictWindow      time.Duration
	MetricsLookbackDays int
	StaleAfter          time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	cfg.Database.SSLMode = getEnvWithDefault("DB_SSLMODE", "disable")

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	if cfg.Amazon.ClientID, err = requireEnv("AMAZON_CLIENT_ID"); err != nil {
		return nil, err
	}
	if cfg.Amazon.ClientSecret, err = requireEnv("AMAZON_CLIENT_SECRET"); err != nil {
		return nil, err
	}
	cfg.Amazon.RedirectURI = getEnvWithDefault("AMAZON_REDIRECT_URI", "")
	cfg.Amazon.Region = getEnvWithDefault("AMAZON_REGION", "NA")
	cfg.Amazon.BaseURL = getEnvWithDefault("AMAZON_API_BASE_URL", "")
	if cfg.Amazon.Burst, err = strconv.Atoi(getEnvWithDefault("AMAZON_RATE_BURST", "10")); err != nil {
		return nil, fmt.Errorf("failed to parse AMAZON_RATE_BURST: %w", err)
	}
	if cfg.Amazon.RatePerSecond, err = strconv.ParseFloat(getEnvWithDefault("AMAZON_RATE_PER_SECOND", "2"), 64); err != nil {
		return nil, fmt.Errorf("failed to parse AMAZON_RATE_PER_SECOND: %w", err)
	}

	if cfg.Redis.Enabled, err = strconv.ParseBool(getEnvWithDefault("REDIS_ENABLED", "false")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_ENABLED: %w", err)
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = strconv.Atoi(getEnvWithDefault("REDIS_PORT", "6379")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_PORT: %w", err)
	}
	cfg.Redis.Password = getEnvWithDefault("REDIS_PASSWORD", "")
	if cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}

	if cfg.Kafka.Enabled, err = strconv.ParseBool(getEnvWithDefault("KAFKA_ENABLED", "false")); err != nil {
		return nil, fmt.Errorf("failed to parse KAFKA_ENABLED: %w", err)
	}
	if cfg.Kafka.Enabled {
		if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
			return nil, err
		}
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "ads-events")

	cfg.Jobs.RedisAddr = getEnvWithDefault("JOBS_REDIS_ADDR", fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port))
	if cfg.Jobs.Concurrency, err = strconv.Atoi(getEnvWithDefault("JOBS_CONCURRENCY", "4")); err != nil {
		return nil, fmt.Errorf("failed to parse JOBS_CONCURRENCY: %w", err)
	}
	if cfg.Jobs.SyncInterval, err = time.ParseDuration(getEnvWithDefault("SYNC_INTERVAL", "6h")); err != nil {
		return nil, fmt.Errorf("failed to parse SYNC_INTERVAL: %w", err)
	}
	if cfg.Jobs.RulesInterval, err = time.ParseDuration(getEnvWithDefault("RULES_INTERVAL", "1h")); err != nil {
		return nil, fmt.Errorf("failed to parse RULES_INTERVAL: %w", err)
	}

	if cfg.Agent.RequestsPerMinute, err = strconv.Atoi(getEnvWithDefault("AGENT_REQUESTS_PER_MINUTE", "60")); err != nil {
		return nil, fmt.Errorf("failed to parse AGENT_REQUESTS_PER_MINUTE: %w", err)
	}

	if cfg.Sync.ConflictWindow, err = time.ParseDuration(getEnvWithDefault("SYNC_CONFLICT_WINDOW", "5m")); err != nil {
		return nil, fmt.Errorf("failed to parse SYNC_CONFLICT_WINDOW: %w", err)
	}
	if cfg.Sync.MetricsLookbackDays, err = strconv.Atoi(getEnvWithDefault("SYNC_METRICS_LOOKBACK_DAYS", "30")); err != nil {
		return nil, fmt.Errorf("failed to parse SYNC_METRICS_LOOKBACK_DAYS: %w", err)
	}
	if cfg.Sync.StaleAfter, err = time.ParseDuration(getEnvWithDefault("SYNC_STALE_AFTER", "2h")); err != nil {
		return nil, fmt.Errorf("failed to parse SYNC_STALE_AFTER: %w", err)
	}

	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.AllowedOrigins = splitList(getEnvWithDefault("ALLOWED_ORIGINS", "http://localhost:3000"))

	return cfg, nil
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Name, c.SSLMode)
}

// BrokerList splits the comma separated broker string.
func (c *KafkaConfig) BrokerList() []string {
	return splitList(c.Brokers)
}

func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
