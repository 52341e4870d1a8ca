package database

import (
	"fmt"
	"log/slog"

	"github.com/nkulisa-npc/membership-site/internal/config"
	"github.com/nkulisa-npc/membership-site/internal/model"

	"gorm.io/gorm"
)

// Migrate creates missing tables and indexes based on the model definitions.
// The site creates its schema on startup, so this defaults to enabled;
// set DB_AUTO_MIGRATE=false to manage the schema externally.
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("Database migration disabled",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	models := []interface{}{
		&model.Member{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", m, err)
		}
		slog.Debug("Table migrated", "model", fmt.Sprintf("%T", m))
	}

	slog.Info("Database migration complete", "env", cfg.App.Env)
	return nil
}
