package router

import (
	"github.com/gin-gonic/gin"

	"github.com/nkulisa-npc/membership-site/internal/config"
	"github.com/nkulisa-npc/membership-site/internal/contact"
	"github.com/nkulisa-npc/membership-site/internal/mailer"
	"github.com/nkulisa-npc/membership-site/internal/member"
	"github.com/nkulisa-npc/membership-site/internal/meta"
	"github.com/nkulisa-npc/membership-site/internal/mirror"
	"github.com/nkulisa-npc/membership-site/internal/pages"
	"github.com/nkulisa-npc/membership-site/internal/shared/database"
)

// Setup configures all application routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB, mirrorStore *mirror.Client, mail mailer.Mailer) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db, mirrorStore)
	router.GET("/health", metaHandler.Health)

	// Static pages and downloads
	pagesHandler := pages.NewHandler(cfg)
	router.GET("/", pagesHandler.Index)
	router.GET("/about", pagesHandler.About)
	router.GET("/constitution", pagesHandler.Constitution)

	// repository
	memberRepository := member.NewMemberRepository()

	// service
	memberService := member.NewMemberService(db.DB, memberRepository, mirrorStore)
	contactService := contact.NewContactService(mail, cfg.Mail.Operator)

	// handler
	memberHandler := member.NewMemberHandler(memberService)
	contactHandler := contact.NewContactHandler(contactService)

	router.GET("/register", memberHandler.ShowForm)
	router.POST("/register", memberHandler.Register)

	router.GET("/contact", contactHandler.ShowForm)
	router.POST("/contact", contactHandler.Submit)
}
