// Package middleware provides HTTP middleware for the gin engine.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"tally/internal/shared/logger"
)

// Logger returns a middleware that logs each request with latency and
// status. Server errors log at error level, client errors at warn.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Errorw("request failed", fields...)
		case c.Writer.Status() >= 400:
			log.Warnw("request rejected", fields...)
		default:
			log.Debugw("request handled", fields...)
		}
	}
}
