package http

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/requestid"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie    = "storefront_session"
	sessionKey       = "session_id"
	sessionCookieAge = 24 * 60 * 60
)

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestid.Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestid.Header, requestID)
		c.Set(requestid.Header, requestID)
		c.Request = c.Request.WithContext(requestid.With(c.Request.Context(), requestID))
		c.Next()
	}
}

func AccessLogMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		requestID, _ := c.Get(requestid.Header)
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", requestID,
			"client_ip", c.ClientIP(),
		)
	}
}

// SessionMiddleware makes sure every request carries a session id, issuing
// a new cookie when the browser has none.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err == nil {
			_, err = uuid.Parse(id)
		}
		if err != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, sessionCookieAge, "/", "", false, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}
