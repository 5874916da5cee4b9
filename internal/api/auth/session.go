package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vanshika704/gdg/internal/domain/users"
)

// SessionCookie is the cookie the admin pages and APIs are gated on.
const SessionCookie = "token"

// SessionTTL is how long a login lasts; there is no refresh.
const SessionTTL = 24 * time.Hour

// State classifies a request for the auth gate.
type State int

const (
	Anonymous State = iota
	Authenticated
)

// Claims is what a session token carries.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs a session token for u.
func IssueToken(u *users.User, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyToken parses and validates a session token.
func VerifyToken(raw string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// SessionState classifies a request from its cookie alone. Pure with respect
// to the request; the redirect policy lives in the middleware.
func SessionState(r *http.Request, secret []byte) State {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return Anonymous
	}
	if _, err := VerifyToken(cookie.Value, secret); err != nil {
		return Anonymous
	}
	return Authenticated
}
