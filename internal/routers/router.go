package routers

import (
	_ "github.com/haierkeys/lead-intention-service/docs"
	"github.com/haierkeys/lead-intention-service/internal/app"
	"github.com/haierkeys/lead-intention-service/internal/middleware"
	"github.com/haierkeys/lead-intention-service/internal/routers/api_router"
	"github.com/haierkeys/lead-intention-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// newMethodLimiters 公共写接口的令牌桶，每个路由前缀一个桶
func newMethodLimiters(cfg *app.AppConfig) limiter.Face {
	rule := func(key string) limiter.BucketRule {
		return limiter.BucketRule{
			Key:          key,
			FillInterval: cfg.GetLimiterFillInterval(),
			Capacity:     cfg.Limiter.Capacity,
			Quantum:      cfg.Limiter.Quantum,
		}
	}
	return limiter.NewMethodLimiter().AddBuckets(
		rule("/leads"),
		rule("/intentions"),
	)
}

func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	r := gin.New()
	r.Use(middleware.Cors())

	api := r.Group("/")
	{
		api.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header)) // Trace ID 中间件
		api.Use(middleware.Metrics(appContainer.Metrics))
		if cfg.Limiter.Enabled {
			api.Use(middleware.RateLimiter(newMethodLimiters(cfg)))
		}
		api.Use(middleware.ContextTimeout(cfg.GetContextTimeout()))
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		leadHandler := api_router.NewLeadHandler(appContainer)
		intentionHandler := api_router.NewIntentionHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)

		api.POST("/leads", leadHandler.Create)
		api.POST("/intentions", intentionHandler.Create)
		api.PUT("/intentions/:intention_id", intentionHandler.LinkLead)

		api.GET("/health", healthHandler.Check)
		api.GET("/version", versionHandler.ServerVersion)
	}

	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.NoRoute(middleware.NoFound())

	return r
}
