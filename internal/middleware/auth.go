package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// ActorIDHeader carries the identity acting through the admin interface.
	ActorIDHeader = "X-Actor-ID"
	// ActorIDKey is the context key for the acting identity.
	ActorIDKey = "actor_id"
)

// AdminAuth returns a middleware that guards the administrative routes
// with a static bearer token. Requests without a matching token are
// rejected before reaching any handler.
func AdminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		presented, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if actorID := c.GetHeader(ActorIDHeader); actorID != "" {
			c.Set(ActorIDKey, actorID)
		}

		c.Next()
	}
}

// GetActorID retrieves the acting identity from the gin context.
func GetActorID(c *gin.Context) string {
	if actorID, exists := c.Get(ActorIDKey); exists {
		if id, ok := actorID.(string); ok {
			return id
		}
	}
	return ""
}
