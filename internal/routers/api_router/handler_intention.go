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

// IntentionHandler freight intention API router handler
// IntentionHandler 运输意向 API 路由处理器
type IntentionHandler struct {
	*Handler
}

// NewIntentionHandler creates IntentionHandler instance
// NewIntentionHandler 创建 IntentionHandler 实例
func NewIntentionHandler(a *app.App) *IntentionHandler {
	return &IntentionHandler{Handler: NewHandler(a)}
}

// bindFailure 校验失败响应：CEP 格式错误使用 CEP 错误码，其余为参数错误
func bindFailure(errs pkgapp.ValidErrors) *code.Code {
	if errs.HasTag("zipcode") {
		return code.ErrorZipcodeInvalid.Clone().WithDetails(errs.ErrorsToString())
	}
	return code.ErrorInvalidParams.Clone().WithDetails(errs.ErrorsToString())
}

// Create records a freight intention between two zip codes
// @Summary Create freight intention
// @Description Formats and verifies both zip codes against ViaCEP, then stores the intention without a lead
// @Tags Intention
// @Accept json
// @Produce json
// @Param params body dto.IntentionCreateRequest true "Intention"
// @Success 201 {object} dto.IntentionDTO "Created"
// @Failure 400 {object} pkgapp.ErrorRes "Missing or invalid zip code"
// @Failure 404 {object} pkgapp.ErrorRes "Zip code not found"
// @Failure 500 {object} pkgapp.ErrorRes "Internal error"
// @Router /intentions [post]
func (h *IntentionHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.IntentionCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("IntentionHandler.Create.BindAndValid err", zap.Error(errs), zap.Any("fields", errs.MapsToString()))
		response.ToResponse(bindFailure(errs))
		return
	}

	ctx := c.Request.Context()
	intention, err := h.App.IntentionService.Create(ctx, params)
	if err != nil {
		h.logError(ctx, "IntentionHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Created.Clone().WithData(intention))
}

// LinkLead attaches an active lead to an intention that has none
// @Summary Link lead to intention
// @Description Sets lead_id once; an intention that already has a lead is rejected
// @Tags Intention
// @Accept json
// @Produce json
// @Param intention_id path string true "Intention ID"
// @Param params body dto.IntentionLinkLeadRequest true "Lead reference"
// @Success 200 {object} dto.IntentionDTO "Updated"
// @Failure 400 {object} pkgapp.ErrorRes "Already linked, missing lead_id or inactive lead"
// @Failure 404 {object} pkgapp.ErrorRes "Intention or lead not found"
// @Failure 500 {object} pkgapp.ErrorRes "Internal error"
// @Router /intentions/{intention_id} [put]
func (h *IntentionHandler) LinkLead(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.IntentionLinkLeadRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("IntentionHandler.LinkLead.BindAndValid err", zap.Error(errs), zap.Any("fields", errs.MapsToString()))
		response.ToResponse(bindFailure(errs))
		return
	}
	params.IntentionID = c.Param("intention_id")

	ctx := c.Request.Context()
	intention, err := h.App.IntentionService.LinkLead(ctx, params)
	if err != nil {
		h.logError(ctx, "IntentionHandler.LinkLead", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.Clone().WithData(intention))
}
