package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/hogpulse/internal/auth"
)

// UserKey is the gin context key holding the verified auth.Identity.
const UserKey = "auth_identity"

// InternalKeyHeader carries the shared secret of trusted internal callers.
const InternalKeyHeader = "X-Internal-Key"

// TokenVerifier checks a bearer token.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Authenticate resolves an optional "Authorization: Bearer <jwt>" header.
//
// Behavior:
//   - No header: the request continues anonymously.
//   - Valid token: the auth.Identity is stored under UserKey.
//   - Malformed or invalid token: 401, the chain stops.
func Authenticate(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			AbortWithError(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		id, err := v.Verify(strings.TrimSpace(token))
		if err != nil {
			AbortWithError(c, http.StatusUnauthorized, "Unauthorized", err)
			return
		}
		c.Set(UserKey, id)
		c.Next()
	}
}

// RequireUser rejects requests that Authenticate left anonymous.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserFromContext(c); !ok {
			AbortWithError(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		c.Next()
	}
}

// RequireInternalKey admits only callers presenting key in X-Internal-Key.
// An empty key disables the route entirely.
func RequireInternalKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(InternalKeyHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			AbortWithError(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		c.Next()
	}
}

// UserFromContext returns the identity set by Authenticate.
func UserFromContext(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}
