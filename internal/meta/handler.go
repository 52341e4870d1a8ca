package meta

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nkulisa-npc/membership-site/internal/config"
	"github.com/nkulisa-npc/membership-site/internal/mirror"
	"github.com/nkulisa-npc/membership-site/internal/shared/database"
)

// Handler handles meta endpoints (health check)
type Handler struct {
	cfg         *config.Config
	db          *database.DB
	mirrorStore *mirror.Client
}

// NewHandler creates a new meta handler
func NewHandler(cfg *config.Config, db *database.DB, mirrorStore *mirror.Client) *Handler {
	return &Handler{
		cfg:         cfg,
		db:          db,
		mirrorStore: mirrorStore,
	}
}

// Health checks service and database health. The mirror store is reported
// but never makes the service unhealthy: its writes are best effort.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "up"
	start := time.Now()

	if err := h.db.HealthCheck(ctx); err != nil {
		dbStatus = "down"
		slog.Error("Health check failed", "error", err)

		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"service": gin.H{
				"name":        h.cfg.App.Name,
				"environment": h.cfg.App.Env,
			},
			"checks": gin.H{
				"database": gin.H{
					"status": dbStatus,
					"error":  err.Error(),
				},
				"mirror_store": gin.H{
					"state": h.mirrorStore.State().String(),
				},
			},
		})
		return
	}

	dbLatency := time.Since(start).Milliseconds()

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"service": gin.H{
			"name":        h.cfg.App.Name,
			"environment": h.cfg.App.Env,
			"port":        h.cfg.App.Port,
		},
		"checks": gin.H{
			"database": gin.H{
				"status":     dbStatus,
				"latency_ms": dbLatency,
			},
			"mirror_store": gin.H{
				"state": h.mirrorStore.State().String(),
			},
		},
	})
}
