package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Senethlakshan/wanderlust-tales/common"
	"github.com/Senethlakshan/wanderlust-tales/controllers"
	"github.com/Senethlakshan/wanderlust-tales/session"
	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", common.UnauthorizedError(nil, "Authorization header is missing")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", common.UnauthorizedError(nil, "Invalid token format (Missing Bearer)")
	}
	return tokenString, nil
}

// AuthMiddleware admits only requests carrying the token of the active session.
func AuthMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			controllers.Fail(c, err)
			return
		}

		user, err := sessions.Authorize(c.Request.Context(), token)
		if err != nil {
			controllers.Fail(c, err)
			return
		}

		c.Set(controllers.UserIDKey, user.ID)
		c.Set(controllers.UserKey, user)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is sent and lets everyone through.
func OptionalAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := bearerToken(c); err == nil {
			if user, err := sessions.Authorize(c.Request.Context(), token); err == nil {
				c.Set(controllers.UserIDKey, user.ID)
				c.Set(controllers.UserKey, user)
			}
		}
		c.Next()
	}
}

// InvalidateOnUnauthorized clears the session whenever a response goes out
// as 401, whichever handler produced it. A rejected login does not count.
func InvalidateOnUnauthorized(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() != http.StatusUnauthorized {
			return
		}
		if last := c.Errors.Last(); last != nil && common.KindOf(last.Err) == common.KindInvalidCredentials {
			return
		}
		sessions.Invalidate(context.WithoutCancel(c.Request.Context()), c.Request.Method+" "+c.FullPath())
	}
}
