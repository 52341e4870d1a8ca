package member

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nkulisa-npc/membership-site/internal/model"
	sharedError "github.com/nkulisa-npc/membership-site/internal/shared/error"
	"github.com/nkulisa-npc/membership-site/internal/shared/flash"
	"github.com/nkulisa-npc/membership-site/internal/shared/handler"
)

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// ShowForm renders the registration form.
func (h *MemberHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Flashes":  flash.Take(c),
		"Packages": model.Packages,
	})
}

// Register handles the registration form submission.
func (h *MemberHandler) Register(c *gin.Context) {
	var request RegisterRequest

	if !handler.BindForm(c, &request, "/register") {
		return
	}

	_, err := h.memberService.Register(c.Request.Context(), &request)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			c.Error(err)
			handler.RedirectWithFlash(c, "/register", flash.Danger, resp.Message)
			return
		}

		c.Error(err)
		handler.RedirectWithFlash(c, "/register", flash.Danger, sharedError.InternalServerError.Message)
		return
	}

	handler.RedirectWithFlash(c, "/", flash.Success, "Registration successful!")
}
