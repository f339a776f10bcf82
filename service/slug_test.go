package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"小写转换", "Antipasti", "antipasti"},
		{"去除重音", "Caffè Crème Brûlée", "caffe-creme-brulee"},
		{"非字母数字折叠为连字符", "Vini & Bollicine  (rossi)", "vini-bollicine-rossi"},
		{"首尾连字符去除", "--Primi Piatti--", "primi-piatti"},
		{"数字保留", "Menu 2024", "menu-2024"},
		{"纯符号回退到兜底值", "@#$%!", "categoria"},
		{"空字符串回退到兜底值", "", "categoria"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.source))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	// 对自身输出再次调用结果不变
	inputs := []string{"Antipasti di Mare", "Caffè", "--x--", "@#$"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "输入: %q", in)
	}
}
