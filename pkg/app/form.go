package app

import (
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	val "github.com/go-playground/validator/v10"
)

// ValidError single field validation error
// ValidError 单个字段校验错误
type ValidError struct {
	Key     string
	Tag     string // failed rule, empty for decode errors // 未通过的校验规则，解码错误时为空
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

// ErrorsToString joins every message with a comma
// ErrorsToString 用逗号拼接所有错误信息
func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ",")
}

// HasTag reports whether any field failed the given rule
// HasTag 是否存在未通过指定规则的字段
func (v ValidErrors) HasTag(tag string) bool {
	for _, err := range v {
		if err.Tag == tag {
			return true
		}
	}
	return false
}

// MapsToString field -> message
func (v ValidErrors) MapsToString() map[string]string {
	m := make(map[string]string, len(v))
	for _, err := range v {
		m[err.Key] = err.Message
	}
	return m
}

// ValidatorInterface is satisfied by pkg/validator.CustomValidator
// ValidatorInterface 由 pkg/validator.CustomValidator 实现
type ValidatorInterface interface {
	ValidateStruct(obj interface{}) error
	Engine() interface{}
}

// BindAndValid binds the request into v and validates it, translating validator
// messages with the translator stored by the lang middleware.
// BindAndValid 绑定请求参数并校验，使用语言中间件设置的翻译器翻译错误
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors
	err := c.ShouldBind(v)
	// 空请求体按零值处理，由业务层报告缺失字段
	if err == nil || errors.Is(err, io.EOF) {
		return true, nil
	}

	verrs, ok := err.(val.ValidationErrors)
	if !ok {
		errs = append(errs, &ValidError{Key: "body", Message: err.Error()})
		return false, errs
	}

	trans, _ := c.Value("trans").(ut.Translator)
	for _, fe := range verrs {
		msg := fe.Error()
		if trans != nil {
			msg = fe.Translate(trans)
		}
		errs = append(errs, &ValidError{Key: fe.Field(), Tag: fe.Tag(), Message: msg})
	}

	return false, errs
}
