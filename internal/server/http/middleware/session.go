package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gpsolutions/internal/server/http/dto"
)

const (
	// SessionIDContextKey is a gin context key for the browser session identifier.
	SessionIDContextKey = "sessionID"
	// SessionCookieName carries the signed session token.
	SessionCookieName = "sessionId"
)

// SessionIssuer mints and verifies session tokens.
type SessionIssuer interface {
	NewSessionID() string
	IssueToken(sessionID string) (string, error)
	ParseToken(token string) (string, error)
}

// EnsureSession resolves the browser session from its cookie, issuing a new one when the
// cookie is missing or fails verification.
func EnsureSession(sessions SessionIssuer, ttl time.Duration, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
			if id, err := sessions.ParseToken(token); err == nil {
				c.Set(SessionIDContextKey, id)
				c.Next()
				return
			}
		}

		id := sessions.NewSessionID()
		token, err := sessions.IssueToken(id)
		if err != nil {
			logger.Error("issue session token failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
			return
		}

		SetSessionCookie(c, token, ttl)
		c.Set(SessionIDContextKey, id)
		c.Next()
	}
}

// SetSessionCookie writes the session token cookie to response.
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(ttl/time.Second), "/", "", false, true)
}
