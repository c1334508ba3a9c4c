package middleware

import (
	"strings"

	pkgapp "github.com/haierkeys/lead-intention-service/pkg/app"
	"github.com/haierkeys/lead-intention-service/pkg/code"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// TransKey gin 上下文中保存校验翻译器的键
const TransKey = "trans"

// LangWithTranslator 创建带翻译器的语言中间件（支持依赖注入）
// 语言来源优先级：?lang= 查询参数、lang 请求头、Accept-Language
func LangWithTranslator(uni *ut.UniversalTranslator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var raw string
		if s, exist := c.GetQuery("lang"); exist {
			raw = s
		} else if s = c.GetHeader("lang"); len(s) != 0 {
			raw = s
		} else {
			raw = c.GetHeader("Accept-Language")
		}

		lang := NegotiateLang(raw)
		c.Set(pkgapp.LangKey, lang)

		if trans, found := uni.GetTranslator(lang); found {
			c.Set(TransKey, trans)
		} else {
			trans, _ := uni.GetTranslator(code.GetGlobalDefaultLang())
			c.Set(TransKey, trans)
		}

		c.Next()
	}
}

// NegotiateLang maps a header value such as "pt-BR,pt;q=0.9" onto a supported language
// NegotiateLang 将语言头映射为支持的语言（en / pt_br），无法识别时使用全局默认语言
func NegotiateLang(raw string) string {
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		tag = strings.ToLower(strings.ReplaceAll(tag, "-", "_"))
		switch {
		case tag == "":
			continue
		case tag == "pt" || strings.HasPrefix(tag, "pt_"):
			return "pt_br"
		case tag == "en" || strings.HasPrefix(tag, "en_"):
			return "en"
		}
	}
	return code.GetGlobalDefaultLang()
}
