package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Mail     MailConfig
	Mirror   MirrorConfig
	CORS     CORSConfig
	Server   ServerConfig
}

type AppConfig struct {
	Name         string
	Env          string
	Port         int
	SecretKey    string // session cookie signing key
	TemplatesDir string
	DocsDir      string
}

type DatabaseConfig struct {
	URL             string // connection string; empty selects the local SQLite file
	SQLitePath      string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	IsAutoMigrate   bool
}

// IsPostgres reports whether the configured URL selects PostgreSQL.
// Both postgres:// and postgresql:// schemes are accepted, matching what
// hosting platforms hand out.
func (d DatabaseConfig) IsPostgres() bool {
	return strings.HasPrefix(d.URL, "postgres://") || strings.HasPrefix(d.URL, "postgresql://")
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Operator string // recipient of contact-form messages
}

// Enabled reports whether outbound mail credentials are configured.
func (m MailConfig) Enabled() bool {
	return m.Username != "" && m.Password != ""
}

type MirrorConfig struct {
	CredentialsJSON string // credentials document, JSON
	URL             string
	Database        string
	Collection      string
}

// Enabled reports whether the mirror-store integration is configured.
// Either value missing leaves the integration inactive for the process lifetime.
func (m MirrorConfig) Enabled() bool {
	return m.CredentialsJSON != "" && m.URL != ""
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	GracefulTimeout time.Duration
}

func Load(env string) (*Config, error) {
	if err := loadEnvFile(env); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:         getEnv("APP_NAME", "nkulisa-membership-site"),
			Env:          env,
			Port:         getEnvAsInt("APP_PORT", 8080),
			SecretKey:    getEnv("SECRET_KEY", "dev_secret_key"),
			TemplatesDir: getEnv("TEMPLATES_DIR", "./web/templates"),
			DocsDir:      getEnv("DOCS_DIR", "./docs"),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "./data/nkulisa.db"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "1h"),
			ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", "10m"),
			IsAutoMigrate:   getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		Mail: MailConfig{
			Host:     getEnv("MAIL_HOST", "smtp.gmail.com"),
			Port:     getEnvAsInt("MAIL_PORT", 587),
			Username: getEnv("MAIL_USERNAME", ""),
			Password: getEnv("MAIL_PASSWORD", ""),
			Operator: getEnv("MAIL_OPERATOR", ""),
		},
		Mirror: MirrorConfig{
			CredentialsJSON: getEnv("MIRROR_CREDENTIALS", ""),
			URL:             getEnv("MIRROR_URL", ""),
			Database:        getEnv("MIRROR_DATABASE", "nkulisa"),
			Collection:      getEnv("MIRROR_COLLECTION", "members"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "OPTIONS"}),
			AllowedHeaders:   getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 86400),
		},
		Server: ServerConfig{
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", "15s"),
			IdleTimeout:     getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
			GracefulTimeout: getEnvAsDuration("GRACEFUL_TIMEOUT", "30s"),
		},
	}

	// Contact messages go to the operator mailbox, which defaults to the
	// relay account itself.
	if cfg.Mail.Operator == "" {
		cfg.Mail.Operator = cfg.Mail.Username
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadEnvFile(env string) error {
	envFile := fmt.Sprintf(".env.%s", env)

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		slog.Warn("Env file not found, using system environment variables",
			"file", envFile)
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	absPath, _ := filepath.Abs(envFile)
	slog.Info("Env file loaded", "file", absPath)
	return nil
}

func (c *Config) Validate() error {
	var errs []string

	if c.App.Port < 1 || c.App.Port > 65535 {
		errs = append(errs, "invalid port number")
	}

	if c.App.SecretKey == "" {
		errs = append(errs, "session secret key is required")
	}
	if c.IsProduction() && c.App.SecretKey == "dev_secret_key" {
		errs = append(errs, "SECRET_KEY must be set in production")
	}

	if c.Database.URL != "" && !c.Database.IsPostgres() {
		errs = append(errs, "unsupported DATABASE_URL scheme (expected postgres:// or postgresql://)")
	}
	if c.Database.URL == "" && c.Database.SQLitePath == "" {
		errs = append(errs, "either DATABASE_URL or DB_SQLITE_PATH is required")
	}

	if !c.Mail.Enabled() {
		slog.Warn("Mail credentials not configured, contact messages will fail to send")
	}
	if !c.Mirror.Enabled() {
		slog.Warn("Mirror store not configured, secondary member copies are disabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errs, ", "))
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "local" || c.App.Env == "dev"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "prod" || c.App.Env == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	if defaultDuration, err := time.ParseDuration(defaultValue); err == nil {
		return defaultDuration
	}
	return 0
}
