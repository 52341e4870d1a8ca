package pages

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/nkulisa-npc/membership-site/internal/config"
	"github.com/nkulisa-npc/membership-site/internal/shared/flash"
)

// Handler serves the static informational pages and the constitution
// download.
type Handler struct {
	cfg *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Flashes": flash.Take(c),
	})
}

func (h *Handler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"Flashes": flash.Take(c),
	})
}

// Constitution serves the fixed constitution document as an attachment.
func (h *Handler) Constitution(c *gin.Context) {
	path := filepath.Join(h.cfg.App.DocsDir, "constitution.pdf")
	c.FileAttachment(path, "constitution.pdf")
}
