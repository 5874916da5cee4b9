package site

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vanshika704/gdg/internal/domain/carousel"
	"github.com/vanshika704/gdg/internal/domain/post"
	"github.com/vanshika704/gdg/internal/domain/team"
	"github.com/vanshika704/gdg/internal/store"
)

// Handler renders the public marketing pages and the admin shell. The pages
// are intentionally plain; anything decorative stays in the templates.
type Handler struct {
	carousels store.Store[carousel.Item]
	posts     store.Store[post.Post]
	team      store.Store[team.Member]
}

func NewHandler(c store.Store[carousel.Item], p store.Store[post.Post], t store.Store[team.Member]) *Handler {
	return &Handler{carousels: c, posts: p, team: t}
}

// Home renders the landing page with the hero carousel and latest posts.
func (h *Handler) Home(c *gin.Context) {
	items, err := h.carousels.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to load carousel for home page", "error", err)
	}
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to load posts for home page", "error", err)
	}
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Carousels": items,
		"Posts":     posts,
	})
}

// About renders the about page with the team carousel.
func (h *Handler) About(c *gin.Context) {
	members, err := h.team.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to load team for about page", "error", err)
	}
	c.HTML(http.StatusOK, "about.html", gin.H{
		"Team":    members,
		"Batches": team.Batches,
	})
}

// Events renders the events page.
func (h *Handler) Events(c *gin.Context) {
	c.HTML(http.StatusOK, "events.html", nil)
}

// Contact renders the public contact form.
func (h *Handler) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", nil)
}

// AdminDashboard renders the back-office shell; the resource managers in it
// talk to /api over fetch.
func (h *Handler) AdminDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Batches": team.Batches,
	})
}

// AdminLogin renders the login page.
func (h *Handler) AdminLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// AdminSignup renders the signup page.
func (h *Handler) AdminSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", nil)
}
