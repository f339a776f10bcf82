package api

import (
	"grecale/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DTO 字段名与前端接口约定保持 camelCase

// CategoryDto 分类及其子分类
type CategoryDto struct {
	ID            uint             `json:"id"`
	Code          string           `json:"code"`
	Name          string           `json:"name"`
	IconUrl       *string          `json:"iconUrl"`
	Subcategories []SubcategoryDto `json:"subcategories"`
}

// SubcategoryDto 子分类
// ItemIDs 为 nil 表示请求不调整菜品绑定，空数组表示清空绑定
type SubcategoryDto struct {
	ID         uuid.UUID `json:"id"`
	Slug       string    `json:"slug"`
	Name       string    `json:"name"`
	Position   int       `json:"position"`
	CategoryID *uint     `json:"categoryId"`
	ItemIDs    []uint    `json:"itemIds"`
}

// ItemTagDto 菜品标签
type ItemTagDto struct {
	Label    string `json:"label"`
	CssClass string `json:"cssClass"`
}

// ItemDto 菜品
type ItemDto struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	PhotoUrl    *string         `json:"photoUrl"`
	Tag         *ItemTagDto     `json:"tag,omitempty"`
	CategoryID  uint            `json:"categoryId"`
}

func toCategoryDto(category *models.Category) CategoryDto {
	dto := CategoryDto{
		ID:            category.ID,
		Code:          category.Code,
		Name:          category.Name,
		IconUrl:       category.IconUrl,
		Subcategories: make([]SubcategoryDto, 0, len(category.Subcategories)),
	}
	for i := range category.Subcategories {
		dto.Subcategories = append(dto.Subcategories, toSubcategoryDto(&category.Subcategories[i]))
	}
	return dto
}

func toSubcategoryDto(subcategory *models.Subcategory) SubcategoryDto {
	categoryID := subcategory.CategoryID
	dto := SubcategoryDto{
		ID:         subcategory.ID,
		Slug:       subcategory.Slug,
		Name:       subcategory.Name,
		Position:   subcategory.Position,
		CategoryID: &categoryID,
		ItemIDs:    make([]uint, 0, len(subcategory.Items)),
	}
	for _, item := range subcategory.Items {
		if item.ID != 0 {
			dto.ItemIDs = append(dto.ItemIDs, item.ID)
		}
	}
	return dto
}

func toItemDto(item *models.Item) ItemDto {
	dto := ItemDto{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		PhotoUrl:    item.PhotoUrl,
		CategoryID:  item.CategoryID,
	}
	// 标签以 label 是否存在为准，半空的标签按无标签处理
	if item.Tag != nil && item.Tag.Label != "" {
		dto.Tag = &ItemTagDto{Label: item.Tag.Label, CssClass: item.Tag.CssClass}
	}
	return dto
}
