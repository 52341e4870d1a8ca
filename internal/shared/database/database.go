package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nkulisa-npc/membership-site/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB wraps the GORM database instance
type DB struct {
	*gorm.DB
}

// New creates a new database connection. DATABASE_URL selects PostgreSQL;
// when it is unset the local SQLite file is used.
func New(cfg *config.Config) (*DB, error) {
	dialector, err := openDialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger:                 newLogger(cfg),
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		// Unique-constraint violations surface as gorm.ErrDuplicatedKey on
		// both drivers; the constraint is the authority for duplicates.
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Configure connection pool. SQLite serializes writes, so access goes
	// through a single connection to avoid "database is locked" errors.
	maxOpen, maxIdle := cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns
	if !cfg.Database.IsPostgres() {
		maxOpen, maxIdle = 1, 1
	}
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Database connected",
		"driver", driverName(cfg.Database),
		"max_idle_conns", maxIdle,
		"max_open_conns", maxOpen,
		"conn_max_lifetime", cfg.Database.ConnMaxLifetime.String(),
		"conn_max_idle_time", cfg.Database.ConnMaxIdleTime.String(),
	)

	// Run migration based on configuration
	if err := Migrate(db, cfg); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &DB{DB: db}, nil
}

// openDialector selects the GORM dialector from the configured URL.
func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	if cfg.URL == "" {
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		return sqlite.Open(cfg.SQLitePath), nil
	}

	if cfg.IsPostgres() {
		return postgres.Open(cfg.URL), nil
	}

	return nil, fmt.Errorf("unsupported database URL scheme: %s", cfg.URL)
}

func driverName(cfg config.DatabaseConfig) string {
	if cfg.IsPostgres() {
		return "postgres"
	}
	return "sqlite"
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	slog.Info("Database connection closed")
	return nil
}

// HealthCheck performs a health check on the database
func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	return nil
}

// WithContext returns a new DB with context
func (db *DB) WithContext(ctx context.Context) *gorm.DB {
	return db.DB.WithContext(ctx)
}
