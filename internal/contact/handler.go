package contact

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nkulisa-npc/membership-site/internal/shared/flash"
	"github.com/nkulisa-npc/membership-site/internal/shared/handler"
)

type ContactHandler struct {
	contactService *ContactService
}

func NewContactHandler(contactService *ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// ShowForm renders the contact form.
func (h *ContactHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Flashes": flash.Take(c),
	})
}

// Submit handles the contact form submission. Failures are non-fatal: the
// relay's reason is surfaced in the flash and the submitter may retry.
func (h *ContactHandler) Submit(c *gin.Context) {
	var request ContactRequest

	if !handler.BindForm(c, &request, "/contact") {
		return
	}

	if err := h.contactService.Send(c.Request.Context(), &request); err != nil {
		c.Error(err)
		handler.RedirectWithFlash(c, "/contact", flash.Danger,
			fmt.Sprintf("Failed to send message: %s", err.Error()))
		return
	}

	handler.RedirectWithFlash(c, "/contact", flash.Success, "Message sent successfully.")
}
