package api

import (
	"grecale/models"

	"gorm.io/gorm"
)

// NewCategoryHandler 分类 CRUD 处理器
// 分类的 DTO 携带子分类列表（含各自的菜品 ID），列表和详情都需要预加载
func NewCategoryHandler() *CrudHandler[models.Category, CategoryDto] {
	return &CrudHandler[models.Category, CategoryDto]{
		name:     "分类",
		preloads: []string{"Subcategories", "Subcategories.Items"},
		toDto:    toCategoryDto,
		apply:    applyCategoryDto,
	}
}

func applyCategoryDto(tx *gorm.DB, category *models.Category, dto *CategoryDto) error {
	category.Code = dto.Code
	category.Name = dto.Name
	category.IconUrl = dto.IconUrl
	return nil
}
