package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/vanshika704/gdg/internal/domain/users"
	"github.com/vanshika704/gdg/internal/store"
)

func (h *Handler) googleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.cfg.Google.ClientID,
		ClientSecret: h.cfg.Google.ClientSecret,
		RedirectURL:  h.cfg.Google.RedirectURL,
		Scopes: []string{
			"openid",
			"email",
			"profile",
		},
		Endpoint: google.Endpoint,
	}
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GoogleStart handles GET /auth/google.
func (h *Handler) GoogleStart(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	// state lives in an HttpOnly cookie for the round trip
	c.SetCookie("oauth_state", state, 300, "/", "", h.secureCookies(), true)

	url := h.googleOAuthConfig().AuthCodeURL(state, oauth2.AccessTypeOnline)
	c.Redirect(http.StatusFound, url)
}

// GoogleCallback handles GET /auth/google/callback: verifies the ID token,
// upserts the account and issues the same session cookie a password login
// would.
func (h *Handler) GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code/state"})
		return
	}

	cookieState, err := c.Cookie("oauth_state")
	if err != nil || cookieState != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}

	ctx := c.Request.Context()
	conf := h.googleOAuthConfig()

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		slog.Error("google code exchange failed", "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "code exchange failed"})
		return
	}

	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no id_token in response"})
		return
	}

	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		slog.Error("oidc provider init failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "oidc provider unavailable"})
		return
	}
	verifier := provider.Verifier(&oidc.Config{ClientID: conf.ClientID})

	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid id token"})
		return
	}

	var claims struct {
		Sub   string `json:"sub"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil || claims.Sub == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
		return
	}

	user, err := h.upsertGoogleUser(c, claims.Sub, claims.Email, claims.Name)
	if err != nil {
		slog.Error("google user upsert failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign in"})
		return
	}

	session, err := IssueToken(user, []byte(h.cfg.JWT.Secret), SessionTTL)
	if err != nil {
		slog.Error("failed to sign session token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create token"})
		return
	}

	h.setSessionCookie(c, session)
	c.Redirect(http.StatusFound, "/admin")
}

func (h *Handler) upsertGoogleUser(c *gin.Context, sub, email, name string) (*users.User, error) {
	ctx := c.Request.Context()

	if user, err := h.users.FindByGoogleSub(ctx, sub); err == nil {
		return user, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	// An existing password account with the same email gets linked.
	if user, err := h.users.FindByEmail(ctx, email); err == nil {
		user.GoogleSub = &sub
		if err := h.users.Save(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	user := users.User{
		Username:     name,
		Email:        email,
		AuthProvider: "google",
		GoogleSub:    &sub,
		Role:         "admin",
	}
	if err := h.users.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
