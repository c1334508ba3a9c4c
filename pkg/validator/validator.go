// Package validator gin binding validator with project specific rules
// Package validator gin 参数校验器及自定义规则
package validator

import (
	"reflect"
	"strings"
	"sync"

	"github.com/haierkeys/lead-intention-service/pkg/util"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	pt_BR_translations "github.com/go-playground/validator/v10/translations/pt_BR"
)

// CustomValidator implements binding.StructValidator
type CustomValidator struct {
	once     sync.Once
	validate *validator.Validate
}

var _ binding.StructValidator = (*CustomValidator)(nil)

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{}
}

func (v *CustomValidator) ValidateStruct(obj interface{}) error {
	if kindOfData(obj) != reflect.Struct {
		return nil
	}
	v.lazyinit()
	return v.validate.Struct(obj)
}

func (v *CustomValidator) Engine() interface{} {
	v.lazyinit()
	return v.validate
}

func (v *CustomValidator) lazyinit() {
	v.once.Do(func() {
		v.validate = validator.New()
		v.validate.SetTagName("binding")
	})
}

func kindOfData(data interface{}) reflect.Kind {
	value := reflect.ValueOf(data)
	kind := value.Kind()
	if kind == reflect.Ptr {
		kind = value.Elem().Kind()
	}
	return kind
}

// Zipcode 校验规则：去除非数字字符后为 8 位数字
func Zipcode(fl validator.FieldLevel) bool {
	return util.IsValidZipcode(util.FormatZipcode(fl.Field().String()))
}

// RegisterCustom registers the project rules on the gin binding engine.
// RegisterCustom 在 gin 绑定引擎上注册自定义规则
func RegisterCustom() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("zipcode", Zipcode)
}

var customMessages = map[string]map[string]string{
	"en":    {"zipcode": "{0} must be a valid zip code"},
	"pt_BR": {"zipcode": "{0} deve ser um CEP válido"},
}

// RegisterCustomTranslations 注册自定义规则的错误信息翻译
func RegisterCustomTranslations(v *validator.Validate, trans ut.Translator) error {
	messages, ok := customMessages[trans.Locale()]
	if !ok {
		messages = customMessages["en"]
	}
	for tag, text := range messages {
		text := text
		err := v.RegisterTranslation(tag, trans,
			func(ut ut.Translator) error {
				return ut.Add(tag, text, true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				t, _ := ut.T(fe.Tag(), fe.Field())
				return t
			},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Install sets CustomValidator as the gin binding validator, names fields by their
// json tag and registers en / pt_BR translations including the custom rules.
// Install 安装 gin 绑定校验器，字段名取 json 标签，并注册 en / pt_BR 翻译
func Install() (*ut.UniversalTranslator, error) {
	customValidator := NewCustomValidator()
	binding.Validator = customValidator

	validate := customValidator.Engine().(*validator.Validate)
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := RegisterCustom(); err != nil {
		return nil, err
	}

	uni := ut.New(en.New(), en.New(), pt_BR.New())

	enTran, _ := uni.GetTranslator("en")
	ptTran, _ := uni.GetTranslator("pt_BR")

	if err := en_translations.RegisterDefaultTranslations(validate, enTran); err != nil {
		return nil, err
	}
	if err := pt_BR_translations.RegisterDefaultTranslations(validate, ptTran); err != nil {
		return nil, err
	}
	if err := RegisterCustomTranslations(validate, enTran); err != nil {
		return nil, err
	}
	if err := RegisterCustomTranslations(validate, ptTran); err != nil {
		return nil, err
	}

	return uni, nil
}
