package contact

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vanshika704/gdg/config"
	"github.com/vanshika704/gdg/internal/domain/contact"
	"github.com/vanshika704/gdg/internal/store"
)

// Handler serves the contact-message endpoints. Create is reachable from the
// public contact form; the rest back the admin table view.
type Handler struct {
	store store.Store[contact.Message]
	smtp  config.SMTPConfig
}

func NewHandler(s store.Store[contact.Message], smtp config.SMTPConfig) *Handler {
	return &Handler{store: s, smtp: smtp}
}

// Create handles POST /api/contact.
func (h *Handler) Create(c *gin.Context) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if input.Name == "" || input.Email == "" || input.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	msg := contact.Message{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	if err := h.store.Create(c.Request.Context(), &msg); err != nil {
		slog.Error("failed to create contact message", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating contact submission"})
		return
	}

	// Heads-up email for the team; the submission already succeeded.
	if h.smtp.Enabled() {
		if err := sendNotification(h.smtp, &msg); err != nil {
			slog.Error("failed to send contact notification", "error", err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{"contact": msg})
}

// List handles GET /api/contact, newest first.
func (h *Handler) List(c *gin.Context) {
	msgs, err := h.store.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list contact messages", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching contact submissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": msgs})
}

// Update handles PUT /api/contact?id=. Only the fields present in the body
// are overwritten.
func (h *Handler) Update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Contact ID is required"})
		return
	}

	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request body"})
		return
	}

	msg, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact submission not found"})
		return
	}
	if err != nil {
		slog.Error("failed to load contact message", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating contact submission"})
		return
	}

	if input.Name != "" {
		msg.Name = input.Name
	}
	if input.Email != "" {
		msg.Email = input.Email
	}
	if input.Message != "" {
		msg.Message = input.Message
	}

	if err := h.store.Save(c.Request.Context(), msg); err != nil {
		slog.Error("failed to save contact message", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating contact submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contact": msg})
}

// Delete handles DELETE /api/contact?id=.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Contact ID is required"})
		return
	}

	if _, err := h.store.Get(c.Request.Context(), id); errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact submission not found"})
		return
	} else if err != nil {
		slog.Error("failed to load contact message", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting contact submission"})
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		slog.Error("failed to delete contact message", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting contact submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact submission deleted successfully"})
}
