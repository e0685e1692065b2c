package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"adsync/internal/observability"

	"github.com/jmoiron/sqlx"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB wraps a test database instance
type TestDB struct {
	db     *sqlx.DB
	logger *observability.Logger
	Store  Store
}

// SetupTestDB connects to the database named by TEST_DB_* variables, or starts a disposable
// Postgres container when TEST_DB_HOST is unset. Migrations are applied either way.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	connStr := os.Getenv("TEST_DB_URL")
	if connStr == "" && os.Getenv("TEST_DB_HOST") != "" {
		connStr = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			envOr("TEST_DB_USER", "ads_user"),
			envOr("TEST_DB_PASSWORD", "ads_password"),
			os.Getenv("TEST_DB_HOST"),
			envOr("TEST_DB_PORT", "5432"),
			envOr("TEST_DB_NAME", "ads_db"))
	}
	if connStr == "" {
		connStr = startPostgresContainer(t)
	}

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("failed to ping database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrateOnce(connStr, db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	logger := observability.NewNopLogger()
	return &TestDB{
		db:     db,
		logger: logger,
		Store:  Store{db: db, logger: logger},
	}
}

var (
	containerOnce sync.Once
	containerConn string
	containerErr  error
)

// startPostgresContainer boots one container per test binary; the testcontainers reaper removes it.
func startPostgresContainer(t *testing.T) string {
	t.Helper()
	containerOnce.Do(func() {
		ctx := context.Background()
		container, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("ads_db"),
			postgres.WithUsername("ads_user"),
			postgres.WithPassword("ads_password"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		if err != nil {
			containerErr = fmt.Errorf("failed to start postgres container: %w", err)
			return
		}
		containerConn, containerErr = container.ConnectionString(ctx, "sslmode=disable")
	})
	if containerErr != nil {
		t.Fatalf("%v", containerErr)
	}
	return containerConn
}

var (
	migrateMu sync.Mutex
	migrated  = map[string]bool{}
)

// migrateOnce serializes migrations so parallel tests do not race on DDL.
func migrateOnce(connStr string, db *sqlx.DB) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()
	if migrated[connStr] {
		return nil
	}
	if err := runMigrations(db); err != nil {
		return err
	}
	migrated[connStr] = true
	return nil
}

// runMigrations applies all migration files to the database
func runMigrations(db *sqlx.DB) error {
	migrationsDir := "../../migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		migrationsDir = "migrations"
		if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
			return fmt.Errorf("migrations directory not found")
		}
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "V*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found in %s", migrationsDir)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	if len(tables) == 0 {
		tables = []string{
			"agent_messages",
			"agent_heartbeats",
			"agent_rate_limits",
			"agent_api_keys",
			"sync_states",
			"audit_logs",
			"rule_executions",
			"automation_rules",
			"safety_limits",
			"product_target_metrics",
			"keyword_metrics",
			"campaign_metrics",
			"product_targets",
			"negative_keywords",
			"keywords",
			"ad_groups",
			"campaigns",
			"amazon_credentials",
		}
	}

	for _, table := range tables {
		if _, err := tdb.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			if !strings.Contains(err.Error(), "does not exist") {
				t.Fatalf("failed to truncate table %s: %v", table, err)
			}
		}
	}
}

// GetDB returns the underlying sqlx.DB for direct access if needed
func (tdb *TestDB) GetDB() *sqlx.DB {
	return tdb.db
}

// MustExec executes SQL and fails the test if there's an error
func (tdb *TestDB) MustExec(t *testing.T, query string, args ...interface{}) {
	t.Helper()
	if _, err := tdb.db.Exec(query, args...); err != nil {
		t.Fatalf("failed to execute SQL: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
