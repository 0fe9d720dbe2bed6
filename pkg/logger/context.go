package logger

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	loggerKey       = "logger"
)

// Attach stores a request-scoped logger on the gin context.
func Attach(c *gin.Context, requestID string) *zap.Logger {
	l := L().With(zap.String(requestIDKey, requestID))
	c.Set(requestIDKey, requestID)
	c.Set(loggerKey, l)
	return l
}

// FromContext returns the request logger, or the global one tagged with
// whatever request id can be found.
func FromContext(c *gin.Context) *zap.Logger {
	if c == nil {
		return L()
	}
	if l, ok := c.Get(loggerKey); ok {
		if zl, ok := l.(*zap.Logger); ok {
			return zl
		}
	}
	id := c.GetString(requestIDKey)
	if id == "" && c.Request != nil {
		id = c.GetHeader(RequestIDHeader)
	}
	if id == "" {
		id = "unknown"
	}
	return L().With(zap.String(requestIDKey, id))
}

func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
