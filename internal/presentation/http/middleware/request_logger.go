package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/logging"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/performance"
)

// RequestLogger times every request with a performance marker and logs it on
// the http channel.
func RequestLogger(logger *logging.ChanneledLogger, tracker *performance.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		marker := tracker.StartOperation(fmt.Sprintf("http:%s %s", c.Request.Method, c.FullPath()), c.Param("locale"))

		c.Next()

		status := c.Writer.Status()
		marker.SetSuccess(status < 500)
		if len(c.Errors) > 0 {
			marker.SetError(c.Errors.Last())
		}
		marker.AddMetadata("status", status)
		marker.Complete()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"bytes", c.Writer.Size(),
			"duration", time.Since(start),
		}
		switch {
		case status >= 500:
			logger.HTTP().Error("Request failed", attrs...)
		case status >= 400:
			logger.HTTP().Warn("Request rejected", attrs...)
		default:
			logger.HTTP().Info("Request completed", attrs...)
		}
	}
}
