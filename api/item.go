package api

import (
	"errors"
	"fmt"

	"grecale/models"
	"grecale/service"

	"gorm.io/gorm"
)

// NewItemHandler 菜品 CRUD 处理器
// 菜品与子分类的绑定不在这里维护，统一走子分类接口的 itemIds 同步
func NewItemHandler() *CrudHandler[models.Item, ItemDto] {
	return &CrudHandler[models.Item, ItemDto]{
		name:  "菜品",
		toDto: toItemDto,
		apply: applyItemDto,
	}
}

func applyItemDto(tx *gorm.DB, item *models.Item, dto *ItemDto) error {
	if dto.CategoryID == 0 {
		return fmt.Errorf("菜品必须指定 categoryId: %w", service.ErrNotFound)
	}
	var category models.Category
	if err := tx.First(&category, dto.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("分类不存在: id=%d: %w", dto.CategoryID, service.ErrNotFound)
		}
		return err
	}

	item.Name = dto.Name
	item.Description = dto.Description
	item.Price = dto.Price.Round(2)
	item.PhotoUrl = dto.PhotoUrl
	item.CategoryID = category.ID
	if dto.Tag != nil && dto.Tag.Label != "" {
		item.Tag = &models.ItemTag{Label: dto.Tag.Label, CssClass: dto.Tag.CssClass}
	} else {
		item.Tag = nil
	}
	return nil
}
