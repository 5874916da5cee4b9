package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vanshika704/gdg/internal/api/auth"
)

// LoginPath and AdminPath are the two landing pages the gate redirects
// between.
const (
	LoginPath  = "/admin/login"
	SignupPath = "/admin/signup"
	AdminPath  = "/admin"
)

// PageGate applies the admin-area redirect policy: anonymous visitors of a
// protected page go to the login page, logged-in visitors of the login and
// signup pages go back to the dashboard.
func PageGate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		isPublicPath := path == LoginPath || path == SignupPath
		state := auth.SessionState(c.Request, secret)

		if isPublicPath && state == auth.Authenticated {
			c.Redirect(http.StatusTemporaryRedirect, AdminPath)
			c.Abort()
			return
		}
		if !isPublicPath && state == auth.Anonymous {
			c.Redirect(http.StatusTemporaryRedirect, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSession protects the admin API routes. Unlike PageGate it answers
// JSON, since callers are fetch requests, not page navigations.
func RequireSession(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(auth.SessionCookie)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		claims, err := auth.VerifyToken(cookie, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}
