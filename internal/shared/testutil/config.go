package testutil

import (
	"time"

	"github.com/nkulisa-npc/membership-site/internal/config"
)

// NewTestConfig creates a test configuration
// This removes the need for environment variables during testing
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:         "nkulisa-membership-site-test",
			Env:          "test",
			Port:         8080,
			SecretKey:    "test_secret_key",
			TemplatesDir: "../../web/templates",
			DocsDir:      "../../docs",
		},
		Database: config.DatabaseConfig{
			URL:             "",
			SQLitePath:      ":memory:",
			MaxIdleConns:    1,
			MaxOpenConns:    1,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 10 * time.Minute,
			IsAutoMigrate:   true,
		},
		Mail: config.MailConfig{
			Host:     "localhost",
			Port:     2525,
			Username: "operator@example.com",
			Password: "test",
			Operator: "operator@example.com",
		},
		Mirror: config.MirrorConfig{},
		CORS: config.CORSConfig{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Server: config.ServerConfig{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			GracefulTimeout: 30 * time.Second,
		},
	}
}
