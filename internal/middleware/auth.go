// internal/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gurkanbulca/taskboard/internal/service"
	"github.com/gurkanbulca/taskboard/pkg/auth"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "taskboard_session"

// actorKey is the gin context key the actor is stored under.
const actorKey = "actor"

// RequireSession authenticates a request from the session cookie or,
// as a fallback for non-browser clients, the Authorization header.
func RequireSession(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			header := c.GetHeader("Authorization")
			if header == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "未登录"})
				return
			}
			token, err = auth.ExtractTokenFromHeader(header)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "未登录"})
				return
			}
		}

		claims, err := tokens.ValidateSessionToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "未登录"})
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "未登录"})
			return
		}

		c.Set(actorKey, service.Actor{
			ID:    userID,
			Name:  claims.Name,
			Email: claims.Email,
		})

		c.Next()
	}
}

// ActorFromContext returns the authenticated actor set by
// RequireSession.
func ActorFromContext(c *gin.Context) (service.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return service.Actor{}, false
	}
	actor, ok := v.(service.Actor)
	return actor, ok
}
