package models

import (
	"strconv"
	"strings"

	"github.com/myysophia/poa-backend/internal/i18n"
)

// NamePair 记录 ID 与显示名
type NamePair struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// shortName 简称非空取简称，否则取描述，结果去除首尾空白
func shortName(name, description string) string {
	if name != "" {
		return strings.TrimSpace(name)
	}
	return strings.TrimSpace(description)
}

// ResolveDisplayName 计算指定语言下的显示名
// 阿拉伯语优先阿拉伯文，其余语言优先英文，两者都为空时使用记录 ID
func (p *Permission) ResolveDisplayName(lang string) string {
	shortAR := shortName(p.NameAR, p.DescriptionAR)
	shortEN := shortName(p.NameEN, p.DescriptionEN)

	if i18n.IsArabic(lang) {
		if shortAR != "" {
			return shortAR
		}
		if shortEN != "" {
			return shortEN
		}
	} else {
		if shortEN != "" {
			return shortEN
		}
		if shortAR != "" {
			return shortAR
		}
	}
	return strconv.FormatUint(uint64(p.ID), 10)
}

// NameGet 批量计算显示名，保持输入顺序，只读取给定字段
func NameGet(permissions []Permission, lang string) []NamePair {
	pairs := make([]NamePair, 0, len(permissions))
	for i := range permissions {
		pairs = append(pairs, NamePair{
			ID:   permissions[i].ID,
			Name: permissions[i].ResolveDisplayName(lang),
		})
	}
	return pairs
}

// FillDisplayNames 为每条记录写入当前语言的显示名
func FillDisplayNames(permissions []Permission, lang string) {
	for i := range permissions {
		permissions[i].DisplayName = permissions[i].ResolveDisplayName(lang)
	}
}
