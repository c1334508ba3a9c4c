// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"time"

	"github.com/haierkeys/lead-intention-service/internal/app"
	"github.com/haierkeys/lead-intention-service/internal/dto"
	pkgapp "github.com/haierkeys/lead-intention-service/pkg/app"
	"github.com/haierkeys/lead-intention-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// Check 健康检查接口
// @Summary 健康检查
// @Description 检查服务健康状态，包括数据库连接
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthDTO
// @Failure 503 {object} dto.HealthDTO
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	health := dto.HealthDTO{
		Status:   "ok",
		Database: "ok",
		Version:  h.App.Version().Version,
		Uptime:   h.App.Uptime().Truncate(time.Second).String(),
	}

	if err := h.App.Dao.Ping(c.Request.Context()); err != nil {
		h.logError(c.Request.Context(), "HealthHandler.Check", err)
		health.Status = "degraded"
		health.Database = "error"
		pkgapp.NewResponse(c).ToResponse(code.ErrorServiceUnavailable.Clone().WithData(health))
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.Clone().WithData(health))
}
