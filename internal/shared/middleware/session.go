package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/nkulisa-npc/membership-site/internal/config"
)

const sessionName = "nkulisa_session"

// Session installs a cookie-backed session signed with the app secret key.
// The session only carries flash statuses, so a short lifetime is enough.
func Session(cfg *config.Config) gin.HandlerFunc {
	store := cookie.NewStore([]byte(cfg.App.SecretKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg.IsProduction(),
	})
	return sessions.Sessions(sessionName, store)
}
