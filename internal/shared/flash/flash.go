package flash

import (
	"encoding/gob"
	"log/slog"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Level selects how a flash is rendered.
type Level string

const (
	Success Level = "success"
	Danger  Level = "danger"
)

// Flash is a one-shot status message shown on the next rendered page.
type Flash struct {
	Level   Level
	Message string
}

func init() {
	// The cookie store serializes session values with gob.
	gob.Register(Flash{})
}

// Set queues a flash for the next request.
func Set(c *gin.Context, level Level, message string) {
	session := sessions.Default(c)
	session.AddFlash(Flash{Level: level, Message: message})
	if err := session.Save(); err != nil {
		slog.Warn("Failed to save flash to session", "error", err)
	}
}

// Take returns the queued flashes and clears them from the session.
func Take(c *gin.Context) []Flash {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(); err != nil {
			slog.Warn("Failed to clear flashes from session", "error", err)
		}
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
