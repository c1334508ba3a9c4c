package app

import (
	"net/http"
	"strings"

	"github.com/haierkeys/lead-intention-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// LangKey gin context key holding the negotiated response language
// LangKey gin 上下文中保存响应语言的键
const LangKey = "lang"

// VersionInfo version information // 版本信息
type VersionInfo struct {
	Version   string `json:"version"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
}

type Response struct {
	Ctx *gin.Context
}

// ErrorRes is the error body: {"message": "..."}
// Details are only serialized for client errors (4xx)
// ErrorRes 错误响应结构；Details 仅在 4xx 时输出
type ErrorRes struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{
		Ctx: ctx,
	}
}

// GetRequestIP gets the request IP
// GetRequestIP 获取ip
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}

func GetAccessHost(c *gin.Context) string {
	AccessProto := ""
	if proto := c.Request.Header.Get("X-Forwarded-Proto"); proto == "" {
		AccessProto = "http" + "://"
	} else {
		AccessProto = proto + "://"
	}
	return AccessProto + c.Request.Host
}

// GetLang returns the response language negotiated by the lang middleware
// GetLang 获取语言中间件协商的响应语言
func GetLang(c *gin.Context) string {
	if l := c.GetString(LangKey); l != "" {
		return l
	}
	return code.GetGlobalDefaultLang()
}

// ToResponse output to browser
// Success codes write their data as the body, error codes write ErrorRes
// ToResponse 输出到浏览器：成功码直接输出数据，错误码输出 ErrorRes
func (r *Response) ToResponse(codeObj *code.Code) {
	statusCode := codeObj.StatusCode()
	r.Ctx.Set("status_code", statusCode)

	if statusCode == http.StatusNoContent {
		r.Ctx.Status(http.StatusNoContent)
		r.Ctx.Writer.WriteHeaderNow()
		return
	}

	if codeObj.Status() {
		if codeObj.HaveData() {
			r.send(statusCode, codeObj.Data())
			return
		}
		r.send(statusCode, ErrorRes{Message: codeObj.MsgIn(GetLang(r.Ctx))})
		return
	}

	// 携带数据的错误码（如健康检查降级）直接输出数据
	if codeObj.HaveData() {
		r.send(statusCode, codeObj.Data())
		return
	}

	content := ErrorRes{
		Message: codeObj.MsgIn(GetLang(r.Ctx)),
	}
	if codeObj.HaveDetails() && statusCode < http.StatusInternalServerError {
		content.Details = strings.Join(codeObj.Details(), ",")
	}

	r.send(statusCode, content)
}

func (r *Response) send(statusCode int, content interface{}) {
	r.Ctx.JSON(statusCode, content)
}
