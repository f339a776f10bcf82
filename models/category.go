package models

import (
	"time"
)

// Category 菜单分类
// code 由名称经 slug 化生成，全表唯一；删除分类时级联删除其子分类
type Category struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	Code          string        `json:"code" gorm:"size:100;not null;uniqueIndex"`
	Name          string        `json:"name" gorm:"size:100"`
	IconUrl       *string       `json:"iconUrl" gorm:"size:255"`
	Subcategories []Subcategory `json:"subcategories,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Items         []Item        `json:"-" gorm:"foreignKey:CategoryID"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// TableName 设置表名
func (Category) TableName() string {
	return "categories"
}
