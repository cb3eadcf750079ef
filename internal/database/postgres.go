package database

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"contrib.go.opencensus.io/integrations/ocsql"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// schedulerSchema holds the one-shot trigger rows. The id is the job key
// (kind plus entity id); data is the serialised JobData payload.
const schedulerSchema = `
CREATE TABLE IF NOT EXISTS scheduler_jobs (
	id TEXT PRIMARY KEY,
	data JSONB NOT NULL,
	fire_at TIMESTAMPTZ NOT NULL,
	misfire_window_seconds INTEGER NOT NULL DEFAULT 86400,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_scheduler_jobs_fire_at ON scheduler_jobs(fire_at);
`

// GetConnectionPoolSettings returns connection pool settings based on environment
func GetConnectionPoolSettings() (maxOpen, maxIdle int, maxLifetime time.Duration) {
	environment := os.Getenv("ENVIRONMENT")

	// Use smaller pools for test environment to conserve connections
	if environment == "test" || os.Getenv("INTEGRATION_TESTS") == "true" {
		return 10, 5, 2 * time.Minute
	}

	// Production settings
	return 25, 25, 20 * time.Minute
}

// SchedulerDSNConfig carries the Postgres connection settings for the
// scheduler store.
type SchedulerDSNConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// GetSchedulerDSN returns the DSN for the scheduler database.
func GetSchedulerDSN(cfg SchedulerDSNConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)
}

// ConnectScheduler opens the scheduler database, ensures the job table and
// applies pool settings. When tracing is enabled the driver is wrapped with
// OpenCensus instrumentation.
func ConnectScheduler(cfg SchedulerDSNConfig, tracingEnabled bool) (*sql.DB, error) {
	driverName := "postgres"
	if tracingEnabled {
		var err error
		driverName, err = ocsql.Register(driverName, ocsql.WithAllTraceOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to register opencensus sql driver: %w", err)
		}
	}

	db, err := sql.Open(driverName, GetSchedulerDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to scheduler database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping scheduler database: %w", err)
	}

	if err := InitializeSchedulerSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize scheduler schema: %w", err)
	}

	maxOpen, maxIdle, maxLifetime := GetConnectionPoolSettings()
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)
	db.SetConnMaxIdleTime(maxLifetime / 2)

	return db, nil
}

// InitializeSchedulerSchema creates the job table when missing.
func InitializeSchedulerSchema(db *sql.DB) error {
	if _, err := db.Exec(schedulerSchema); err != nil {
		return fmt.Errorf("failed to create scheduler_jobs table: %w", err)
	}
	return nil
}
