package bootstrap

import (
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/nkulisa-npc/membership-site/internal/config"
	"github.com/nkulisa-npc/membership-site/internal/shared/middleware"
)

// Bootstrap handles common server setup
type Bootstrap struct {
	cfg *config.Config
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates and configures a gin engine with common middleware
// and the HTML template set for the page handlers.
func (b *Bootstrap) SetupEngine() *gin.Engine {
	// Set Gin mode based on environment
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	// Create engine without default middleware
	engine := gin.New()

	// Essential middleware
	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout)) // 30 second global timeout
	engine.Use(middleware.LoggerMiddleware())
	engine.Use(middleware.Session(b.cfg))

	engine.LoadHTMLGlob(filepath.Join(b.cfg.App.TemplatesDir, "*.html"))

	return engine
}

// recoveryHandler handles panics
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered interface{}) {
	if err, ok := recovered.(string); ok {
		slog.Error("Panic Recovered",
			"error", err,
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", middleware.GetRequestID(c),
		)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error", "request_id": middleware.GetRequestID(c),
	})
}
