package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	sharedError "github.com/nkulisa-npc/membership-site/internal/shared/error"
	"github.com/nkulisa-npc/membership-site/internal/shared/flash"
	"github.com/nkulisa-npc/membership-site/internal/shared/validator"
)

// BindForm parses and validates a form submission.
// Returns true if binding succeeded, false if failed — in the failure case a
// danger flash has been set and the client redirected back to backTo.
//
// Usage:
//
//	var req RegisterRequest
//	if !handler.BindForm(c, &req, "/register") {
//	    return
//	}
func BindForm(c *gin.Context, obj any, backTo string) bool {
	if err := c.ShouldBind(obj); err != nil {
		// Add error to context for middleware logging
		c.Error(err)

		if resp, ok := validator.ToErrorResponse(err); ok {
			RedirectWithFlash(c, backTo, flash.Danger, resp.Message)
		} else {
			RedirectWithFlash(c, backTo, flash.Danger, sharedError.InvalidRequest.Message)
		}
		return false
	}
	return true
}

// RedirectWithFlash queues a flash status and redirects the browser.
// 303 forces the follow-up request to be a GET after a form POST.
func RedirectWithFlash(c *gin.Context, location string, level flash.Level, message string) {
	flash.Set(c, level, message)
	c.Redirect(http.StatusSeeOther, location)
}
