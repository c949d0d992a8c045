// Package i18n 提供错误消息与通知文案的多语言翻译。
package i18n

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	LocaleVI = "vi-VN"
	LocaleEN = "en-US"

	// DefaultLocale 未识别语言时的回退
	DefaultLocale = LocaleVI
)

var catalogs = map[string]map[string]string{
	LocaleVI: viMessages,
	LocaleEN: enMessages,
}

// supported 与 matcher 的下标一一对应
var (
	supported = []string{LocaleVI, LocaleEN}
	matcher   = language.NewMatcher([]language.Tag{
		language.MustParse(LocaleVI),
		language.MustParse(LocaleEN),
	})
)

// NormalizeLocale 将语言标记或 Accept-Language 值匹配到已支持的 locale，q 权重高者优先；无匹配返回空串
func NormalizeLocale(raw string) string {
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return ""
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return ""
	}
	return supported[idx]
}

// ResolveLocale 按 ?lang 参数、Accept-Language 头的顺序解析请求语言
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if locale := NormalizeLocale(c.Query("lang")); locale != "" {
		return locale
	}
	if locale := NormalizeLocale(c.GetHeader("Accept-Language")); locale != "" {
		return locale
	}
	return DefaultLocale
}

// T 翻译 key，缺失时回退到默认语言，再缺失返回 key 本身
func T(locale, key string) string {
	if msgs, ok := catalogs[NormalizeLocale(locale)]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := catalogs[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
