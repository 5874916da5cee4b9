package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vanshika704/gdg/config"
	authapi "github.com/vanshika704/gdg/internal/api/auth"
	carouselapi "github.com/vanshika704/gdg/internal/api/carousel"
	contactapi "github.com/vanshika704/gdg/internal/api/contact"
	postapi "github.com/vanshika704/gdg/internal/api/post"
	siteapi "github.com/vanshika704/gdg/internal/api/site"
	teamapi "github.com/vanshika704/gdg/internal/api/team"
	"github.com/vanshika704/gdg/internal/app/http/middleware"
	"github.com/vanshika704/gdg/internal/domain/carousel"
	"github.com/vanshika704/gdg/internal/domain/contact"
	"github.com/vanshika704/gdg/internal/domain/post"
	"github.com/vanshika704/gdg/internal/domain/team"
	"github.com/vanshika704/gdg/internal/domain/users"
	"github.com/vanshika704/gdg/internal/media"
	"github.com/vanshika704/gdg/internal/store"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, db *gorm.DB, uploader media.Uploader) {
	secret := []byte(cfg.JWT.Secret)

	carouselStore := store.NewGorm[carousel.Item](db)
	postStore := store.NewGorm[post.Post](db)
	teamStore := store.NewGorm[team.Member](db)
	contactStore := store.NewGorm[contact.Message](db)

	carouselHandler := carouselapi.NewHandler(carouselStore, uploader)
	postHandler := postapi.NewHandler(postStore, uploader)
	teamHandler := teamapi.NewHandler(teamStore, uploader)
	contactHandler := contactapi.NewHandler(contactStore, cfg.SMTP)
	authHandler := authapi.NewHandler(users.NewRepository(db), cfg)
	siteHandler := siteapi.NewHandler(carouselStore, postStore, teamStore)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public pages
	r.GET("/", siteHandler.Home)
	r.GET("/about", siteHandler.About)
	r.GET("/events", siteHandler.Events)
	r.GET("/contact", siteHandler.Contact)

	// Admin pages, behind the redirect gate
	pages := r.Group("/admin")
	pages.Use(middleware.PageGate(secret))
	pages.GET("", siteHandler.AdminDashboard)
	pages.GET("/login", siteHandler.AdminLogin)
	pages.GET("/signup", siteHandler.AdminSignup)

	api := r.Group("/api")

	// Account endpoints
	user := api.Group("/user")
	user.Use(middleware.SanitizeJSONInput())
	user.POST("/signup", authHandler.Signup)
	user.POST("/login", authHandler.Login)
	user.GET("/logout", authHandler.Logout)

	if cfg.Google.Enabled() {
		r.GET("/auth/google", authHandler.GoogleStart)
		r.GET("/auth/google/callback", authHandler.GoogleCallback)
	}

	// Public reads feed the marketing pages; the contact form is the one
	// public write.
	api.GET("/carousel", carouselHandler.List)
	api.GET("/post", postHandler.List)
	api.GET("/team", teamHandler.List)
	api.POST("/contact", middleware.SanitizeJSONInput(), contactHandler.Create)

	// Everything that mutates content requires a session.
	protected := api.Group("/")
	protected.Use(middleware.RequireSession(secret))

	protected.POST("/carousel", carouselHandler.Create)
	protected.PUT("/carousel", carouselHandler.Update)
	protected.DELETE("/carousel", carouselHandler.Delete)

	protected.POST("/post", postHandler.Create)
	protected.PUT("/post", postHandler.Update)
	protected.DELETE("/post", postHandler.Delete)

	protected.POST("/team", teamHandler.Create)
	protected.PUT("/team", teamHandler.Update)
	protected.DELETE("/team", teamHandler.Delete)

	protected.GET("/contact", contactHandler.List)
	protected.PUT("/contact", middleware.SanitizeJSONInput(), contactHandler.Update)
	protected.DELETE("/contact", contactHandler.Delete)
}
