package api_router

import (
	"github.com/haierkeys/lead-intention-service/internal/app"
	"github.com/haierkeys/lead-intention-service/internal/dto"
	pkgapp "github.com/haierkeys/lead-intention-service/pkg/app"
	"github.com/haierkeys/lead-intention-service/pkg/code"
	apperrors "github.com/haierkeys/lead-intention-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeadHandler lead API router handler
// LeadHandler 线索 API 路由处理器
type LeadHandler struct {
	*Handler
}

// NewLeadHandler creates LeadHandler instance
// NewLeadHandler 创建 LeadHandler 实例
func NewLeadHandler(a *app.App) *LeadHandler {
	return &LeadHandler{Handler: NewHandler(a)}
}

// Create registers a lead and sends the welcome email
// @Summary Register lead
// @Description Validates name and email, rejects active duplicates, persists the lead and sends a welcome email
// @Tags Lead
// @Accept json
// @Produce json
// @Param params body dto.LeadCreateRequest true "Lead"
// @Success 201 {object} dto.LeadDTO "Created"
// @Failure 400 {object} pkgapp.ErrorRes "Validation failed"
// @Failure 500 {object} pkgapp.ErrorRes "Internal error"
// @Router /leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.LeadCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("LeadHandler.Create.BindAndValid err", zap.Error(errs), zap.Any("fields", errs.MapsToString()))
		response.ToResponse(code.ErrorInvalidParams.Clone().WithDetails(errs.ErrorsToString()))
		return
	}

	ctx := c.Request.Context()
	lead, err := h.App.LeadService.Create(ctx, params)
	if err != nil {
		h.logError(ctx, "LeadHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Created.Clone().WithData(lead))
}
