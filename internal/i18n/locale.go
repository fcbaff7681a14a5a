package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	LangEnglish = "en"
	LangArabic  = "ar"
)

// IsArabic 语言代码（忽略大小写）以 "ar" 开头即优先显示阿拉伯文
func IsArabic(lang string) bool {
	return strings.HasPrefix(strings.ToLower(lang), LangArabic)
}

// Resolve 按顺序返回第一个非空的语言：会话语言、用户语言、默认语言
func Resolve(session, user, fallback string) string {
	if session != "" {
		return session
	}
	if user != "" {
		return user
	}
	return fallback
}

// FromAcceptLanguage 从 Accept-Language 头中取权重最高的语言标签
func FromAcceptLanguage(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	if tags[0] == language.Und {
		return ""
	}
	return tags[0].String()
}

// Base 返回消息目录使用的语言：ar 或 en
func Base(lang string) string {
	if IsArabic(lang) {
		return LangArabic
	}
	return LangEnglish
}
