package service

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugFallback 名称不含任何可用字符时的兜底 slug
const slugFallback = "categoria"

var (
	// 去除重音符号：NFD 分解后删除所有组合用变音符号
	accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify 把名称转换为 URL 安全的 slug
// 小写、去重音、非字母数字折叠为连字符；结果为空时返回 "categoria"
// 对自身输出再次调用结果不变
func Slugify(source string) string {
	lowered := strings.ToLower(source)
	stripped, _, err := transform.String(accentStripper, lowered)
	if err != nil {
		stripped = lowered
	}
	slug := nonSlugChars.ReplaceAllString(stripped, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return slugFallback
	}
	return slug
}
