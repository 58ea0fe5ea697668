package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger attaches a request-scoped logger to the request context and
// logs one line per finished request.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	base := logger.With().Str("module", "http").Logger()
	return func(c *gin.Context) {
		start := time.Now()
		l := base.With().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Logger()
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))

		c.Next()

		status := c.Writer.Status()
		event := l.Info()
		if status >= 500 {
			event = l.Warn()
		}
		event.
			Int("status", status).
			Dur("took", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request handled")
	}
}
