package middleware

import (
	"context"
	"errors"
	"time"

	pkgapp "github.com/haierkeys/lead-intention-service/pkg/app"
	"github.com/haierkeys/lead-intention-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// ContextTimeout bounds every request context by timeout; <= 0 disables it.
// A handler that returns after the deadline without writing gets ErrorRequestTimeout.
// ContextTimeout 为请求上下文设置超时，超时且未写响应时返回 504
func ContextTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !c.Writer.Written() && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			pkgapp.NewResponse(c).ToResponse(code.ErrorRequestTimeout)
			c.Abort()
		}
	}
}
