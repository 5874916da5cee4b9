package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/vanshika704/gdg/config"
	"github.com/vanshika704/gdg/internal/domain/users"
	"github.com/vanshika704/gdg/internal/store"
)

// Handler serves signup, login and logout for the back office.
type Handler struct {
	users users.Repository
	cfg   *config.Config
}

func NewHandler(repo users.Repository, cfg *config.Config) *Handler {
	return &Handler{users: repo, cfg: cfg}
}

// Signup handles POST /api/user/signup.
func (h *Handler) Signup(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email" `
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}
	if input.Username == "" || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	if _, err := h.users.FindByEmail(c.Request.Context(), input.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		slog.Error("signup lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
		return
	}
	pw := string(hashed)

	user := users.User{
		Username:     input.Username,
		Email:        input.Email,
		Password:     &pw,
		AuthProvider: "local",
		Role:         "admin",
	}
	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		slog.Error("signup create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "success": true})
}

// Login handles POST /api/user/login and sets the session cookie.
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), input.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
		return
	}

	if user.Password == nil || *user.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "This account uses Google sign-in"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := IssueToken(user, []byte(h.cfg.JWT.Secret), SessionTTL)
	if err != nil {
		slog.Error("failed to sign session token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create token"})
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "success": true})
}

// Logout handles GET /api/user/logout by clearing the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", h.secureCookies(), true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful", "success": true})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookie, token, int(SessionTTL.Seconds()), "/", "", h.secureCookies(), true)
}

func (h *Handler) secureCookies() bool {
	return h.cfg.Server.Env == "production"
}
