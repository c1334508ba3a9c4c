package errors

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haierkeys/lead-intention-service/internal/middleware"
	pkgapp "github.com/haierkeys/lead-intention-service/pkg/app"
	"github.com/haierkeys/lead-intention-service/pkg/code"
)

// AppError 统一应用错误结构体
// 包含错误码、HTTP 状态、消息、详情、追踪ID和时间戳
type AppError struct {
	// Code 错误码
	Code int `json:"-"`
	// HTTPStatus 响应状态码
	HTTPStatus int `json:"-"`
	// Message 错误消息
	Message string `json:"message"`
	// Details 错误详情（可选）
	Details []string `json:"-"`
	// TraceID 请求追踪ID
	TraceID string `json:"-"`
	// Cause 原始错误（不序列化到JSON）
	Cause error `json:"-"`
	// Timestamp 错误发生时间
	Timestamp time.Time `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap 实现 errors.Unwrap 接口，支持错误链路追踪
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError 从 Code 对象创建 AppError
func NewAppError(c *code.Code, cause error) *AppError {
	return &AppError{
		Code:       c.Code(),
		HTTPStatus: c.StatusCode(),
		Message:    c.Msg(),
		Details:    c.Details(),
		Cause:      cause,
		Timestamp:  time.Now(),
	}
}

// WithTraceID 设置 TraceID 并返回自身（链式调用）
func (e *AppError) WithTraceID(traceID string) *AppError {
	e.TraceID = traceID
	return e
}

// Resolve classifies err into the AppError written to the client.
// Unclassified errors become a generic 500; their text never reaches the body.
// Resolve 将错误归类为返回给客户端的 AppError，未归类错误统一为 500
func Resolve(err error, language string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	codeErr := code.ErrorServerInternal
	errors.As(err, &codeErr)

	appErr = NewAppError(codeErr, err)
	appErr.Message = codeErr.MsgIn(language)
	return appErr
}

// ErrorResponse 统一错误响应处理
// 从 gin.Context 获取 TraceID，将错误转换为 AppError 并返回 JSON 响应
func ErrorResponse(c *gin.Context, err error) {
	appErr := Resolve(err, pkgapp.GetLang(c))
	appErr.TraceID = middleware.GetTraceIDFromGin(c)

	c.Set("status_code", appErr.HTTPStatus)

	if appErr.HTTPStatus == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		c.Writer.WriteHeaderNow()
		return
	}

	body := pkgapp.ErrorRes{Message: appErr.Message}
	if len(appErr.Details) > 0 && appErr.HTTPStatus < http.StatusInternalServerError {
		body.Details = strings.Join(appErr.Details, ",")
	}
	c.JSON(appErr.HTTPStatus, body)
}

// IsAppError 检查错误是否为 AppError 类型
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 从错误链中获取 AppError
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
