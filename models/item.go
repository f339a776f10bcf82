package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// 价格在 JSON 中输出为数字而不是字符串，与前端接口约定一致
	decimal.MarshalJSONWithoutQuotes = true
}

// ItemTag 菜品标签（嵌入值对象）
// 标签要么整体存在，要么整体为空，不允许只有一半字段
type ItemTag struct {
	Label    string `json:"label" gorm:"size:50"`
	CssClass string `json:"cssClass" gorm:"size:50"`
}

// Item 菜品
// 必须属于一个分类；子分类可选，由导入或子分类同步维护
type Item struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" gorm:"size:100;not null"`
	Description   string          `json:"description" gorm:"type:text"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CategoryID    uint            `json:"categoryId" gorm:"index;not null"`
	Category      Category        `json:"-" gorm:"foreignKey:CategoryID"`
	SubcategoryID *uuid.UUID      `json:"subcategoryId" gorm:"type:char(36);index"`
	PhotoUrl      *string         `json:"photoUrl" gorm:"size:255"`
	Tag           *ItemTag        `json:"tag,omitempty" gorm:"embedded;embeddedPrefix:tag_"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName 设置表名
func (Item) TableName() string {
	return "items"
}
