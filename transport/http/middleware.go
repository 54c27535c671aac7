package http

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/citizenchain/citizenauth/core"
	"github.com/citizenchain/citizenauth/ports"
	"github.com/citizenchain/citizenauth/service"
)

const sessionKey = "session"

// AuthMiddleware validates bearer access tokens. A token is accepted only
// while it names the session currently held.
func AuthMiddleware(tokenizer ports.Tokenizer, sessions *service.SessionHolder) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")

		token, found := strings.CutPrefix(auth, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}

		claimed, err := tokenizer.AccessTokenToSession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		current, ok := sessions.Current()
		if !ok || current.ID != claimed.ID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer active"})
			return
		}

		c.Set(sessionKey, current)

		c.Next()
	}
}

// RequireRole lets through only sessions holding one of roles
func RequireRole(roles ...core.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		if !slices.Contains(roles, session.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Current role may not access this workspace",
				"role":  session.Role,
			})
			return
		}

		c.Next()
	}
}

// RequestLogger logs one line per request
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.LogAttrs(c.Request.Context(), level, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

func sessionFrom(c *gin.Context) (core.LoginSession, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return core.LoginSession{}, false
	}
	session, ok := v.(core.LoginSession)
	return session, ok
}
