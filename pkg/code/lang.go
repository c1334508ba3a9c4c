package code

import (
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
)

// lang type, used to store English and Brazilian Portuguese text
// lang 类型，用来存储英文和葡萄牙语（巴西）文本
type lang struct {
	en    string // English // 英文
	pt_br string // Brazilian Portuguese // 葡萄牙语（巴西）
}

const FALLBACK_LNG = "en"

// lng holds the process wide default language
// lng 保存全局默认语言
var lng atomic.Value

func init() {
	lng.Store(FALLBACK_LNG)
}

// GetMessage method returns the corresponding message according to the current language
// GetMessage 方法根据当前语言返回相应的消息
func (l lang) GetMessage() string {
	return l.GetMessageIn(GetGlobalDefaultLang())
}

// GetMessageIn returns the message in the given language, falling back to English
// GetMessageIn 返回指定语言的消息，缺失时回退到英文
func (l lang) GetMessageIn(language string) string {
	val := reflect.ValueOf(l)
	field := val.FieldByName(language)
	if field.IsValid() && field.String() != "" {
		return field.String()
	}
	fallbackField := val.FieldByName(FALLBACK_LNG)
	if fallbackField.IsValid() && fallbackField.String() != "" {
		return fallbackField.String()
	}
	return fmt.Sprintf("No message available for language: %s", language)
}

// GetSupportedLanguages function returns all languages supported by the lang type
// GetSupportedLanguages 函数返回 lang 类型支持的所有语言
func GetSupportedLanguages() []string {
	var languages []string
	typ := reflect.TypeOf(lang{})
	for i := 0; i < typ.NumField(); i++ {
		languages = append(languages, typ.Field(i).Name)
	}
	return languages
}

// SetGlobalDefaultLang sets the global default language
// 设置全局默认语言
func SetGlobalDefaultLang(language string) error {
	for _, l := range GetSupportedLanguages() {
		if language == l {
			lng.Store(language)
			return nil
		}
	}
	lng.Store(FALLBACK_LNG)
	return errors.New("unsupported language type, set defaulting to " + FALLBACK_LNG)
}

// GetGlobalDefaultLang gets the global default language
// 获取全局默认语言
func GetGlobalDefaultLang() string {
	if s, ok := lng.Load().(string); ok && s != "" {
		return s
	}
	return FALLBACK_LNG
}
