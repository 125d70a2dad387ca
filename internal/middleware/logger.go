package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// quietPath reports paths polled by probes and the docs UI, which are logged
// at debug level.
func quietPath(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/swagger")
}

// ZapLogger returns a middleware that logs HTTP requests using zap logger.
func ZapLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start)

		path := c.Request.URL.Path
		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", dur.String(),
			"clientIP", c.ClientIP(),
			"requestID", c.GetString(RequestIDKey),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Sugar().Errorw("HTTP", fields...)
		case quietPath(path):
			log.Sugar().Debugw("HTTP", fields...)
		default:
			log.Sugar().Infow("HTTP", fields...)
		}
	}
}
