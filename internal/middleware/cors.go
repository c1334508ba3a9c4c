package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Cors 跨域中间件，允许任意来源访问公共接口
func Cors() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "lang", DefaultTraceIDHeader},
		ExposeHeaders:    []string{"Content-Length", DefaultTraceIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
