package middleware

import (
	"strconv"
	"time"

	"github.com/haierkeys/lead-intention-service/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics 记录请求数与耗时，route 使用路由模板，未匹配路由记为 "unmatched"
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
