package service

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var nonPriceChars = regexp.MustCompile(`[^0-9.,]`)

// ParsePrice 把表格中的自由文本价格归一化为两位小数
// 空白、"N/A"（不区分大小写）以及清洗后无法解析的文本一律按 0.00 处理，从不报错
// 多个分隔符的写法（如 "9.999,00"）清洗后不是合法的单小数点数字，同样按 0.00 处理
func ParsePrice(priceText string) decimal.Decimal {
	text := strings.TrimSpace(priceText)
	if text == "" || strings.EqualFold(text, "N/A") {
		return decimal.New(0, -2)
	}

	cleaned := nonPriceChars.ReplaceAllString(text, "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if !strings.ContainsAny(cleaned, "0123456789") {
		return decimal.New(0, -2)
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.New(0, -2)
	}
	// 四舍五入到两位小数（价格非负，Round 即为 half-up）
	return value.Round(2)
}
