package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subcategory 菜单子分类
// slug 由所属分类 code 和子分类名称生成，全表唯一
// position 为同一分类内的展示顺序，从 1 开始，按导入时首次出现的顺序分配
type Subcategory struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Slug       string    `json:"slug" gorm:"size:200;not null;uniqueIndex"`
	Name       string    `json:"name" gorm:"size:100;not null"`
	Position   int       `json:"position"`
	CategoryID uint      `json:"categoryId" gorm:"index;not null"`
	Category   Category  `json:"-" gorm:"foreignKey:CategoryID"`
	Items      []Item    `json:"-" gorm:"foreignKey:SubcategoryID"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName 设置表名
func (Subcategory) TableName() string {
	return "subcategories"
}

// BeforeCreate 创建前生成 UUID 主键
func (s *Subcategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
