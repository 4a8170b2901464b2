package mw

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records finished requests.
type RequestObserver interface {
	ObserveRequest(service, route, method string, code int, elapsed time.Duration)
}

// Metrics reports every request to o under the given service label. Routes
// are labeled by their pattern, not the raw path.
func Metrics(o RequestObserver, service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		o.ObserveRequest(service, c.FullPath(), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
