package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petsphere/petsphere-api/internal/auth"
)

// ContextUserKey is where RequireAuth stores the resolved user for the rest
// of the request. Handlers read it once instead of re-resolving the session.
const ContextUserKey = "currentUser"

// RequireAuth gates a route group behind a valid session cookie.
// The cookie token is resolved to a full user record through the gateway on
// every request; a stale or tampered cookie gets a uniform 401.
func RequireAuth(g *auth.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}

		user := g.ResolveSession(token)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}
