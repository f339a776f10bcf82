package api

import (
	"errors"
	"fmt"

	"grecale/database"
	"grecale/models"
	"grecale/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubcategoryHandler 子分类管理
// 创建/更新时可通过 itemIds 同步菜品绑定，同步与写入在同一事务内完成
type SubcategoryHandler struct{}

// NewSubcategoryHandler 创建子分类处理器
func NewSubcategoryHandler() *SubcategoryHandler {
	return &SubcategoryHandler{}
}

// List 列出所有子分类
// @Summary 获取子分类列表
// @Description 获取所有子分类及其绑定的菜品 ID
// @Tags 子分类
// @Produce json
// @Success 200 {object} Response "获取成功"
// @Router /api/v1/subcategories [get]
func (h *SubcategoryHandler) List(c *gin.Context) {
	var subcategories []models.Subcategory
	if err := database.DB.Preload("Items").Find(&subcategories).Error; err != nil {
		InternalError(c, "查询失败: "+SafeErrorMessage(err, "查询失败"))
		return
	}
	dtos := make([]SubcategoryDto, 0, len(subcategories))
	for i := range subcategories {
		dtos = append(dtos, toSubcategoryDto(&subcategories[i]))
	}
	Success(c, dtos)
}

// Get 获取单个子分类
// @Summary 获取子分类详情
// @Tags 子分类
// @Produce json
// @Param id path string true "子分类ID (UUID)"
// @Success 200 {object} Response "获取成功"
// @Failure 404 {object} Response "子分类不存在"
// @Router /api/v1/subcategories/{id} [get]
func (h *SubcategoryHandler) Get(c *gin.Context) {
	subcategory, ok := h.resolve(c)
	if !ok {
		return
	}
	Success(c, toSubcategoryDto(subcategory))
}

// Create 创建子分类
// @Summary 创建子分类
// @Description 创建子分类，必须指定 categoryId；itemIds 存在时同步绑定菜品
// @Tags 子分类
// @Accept json
// @Produce json
// @Param request body SubcategoryDto true "子分类信息"
// @Success 200 {object} Response "创建成功"
// @Failure 404 {object} Response "分类不存在"
// @Router /api/v1/subcategories [post]
func (h *SubcategoryHandler) Create(c *gin.Context) {
	var dto SubcategoryDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	category, ok := h.resolveCategory(c, &dto)
	if !ok {
		return
	}

	subcategory := models.Subcategory{
		Slug:       dto.Slug,
		Name:       dto.Name,
		Position:   dto.Position,
		CategoryID: category.ID,
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&subcategory).Error; err != nil {
			return err
		}
		return service.SyncSubcategoryItems(tx, &subcategory, dto.ItemIDs)
	})
	if err != nil {
		InternalError(c, "创建失败: "+SafeErrorMessage(err, "创建失败"))
		return
	}
	SuccessWithMessage(c, "创建成功", toSubcategoryDto(&subcategory))
}

// Update 更新子分类
// @Summary 更新子分类
// @Description 更新子分类基本信息；itemIds 存在时同步绑定菜品，缺省时不调整绑定
// @Tags 子分类
// @Accept json
// @Produce json
// @Param id path string true "子分类ID (UUID)"
// @Param request body SubcategoryDto true "子分类信息"
// @Success 200 {object} Response "更新成功"
// @Failure 404 {object} Response "子分类或分类不存在"
// @Router /api/v1/subcategories/{id} [put]
func (h *SubcategoryHandler) Update(c *gin.Context) {
	subcategory, ok := h.resolve(c)
	if !ok {
		return
	}
	var dto SubcategoryDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	category, ok := h.resolveCategory(c, &dto)
	if !ok {
		return
	}

	subcategory.Slug = dto.Slug
	subcategory.Name = dto.Name
	subcategory.Position = dto.Position
	subcategory.CategoryID = category.ID
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"slug":        subcategory.Slug,
			"name":        subcategory.Name,
			"position":    subcategory.Position,
			"category_id": subcategory.CategoryID,
		}
		if err := tx.Model(subcategory).Updates(updates).Error; err != nil {
			return err
		}
		return service.SyncSubcategoryItems(tx, subcategory, dto.ItemIDs)
	})
	if err != nil {
		InternalError(c, "更新失败: "+SafeErrorMessage(err, "更新失败"))
		return
	}
	SuccessWithMessage(c, "更新成功", toSubcategoryDto(subcategory))
}

// Delete 删除子分类
// @Summary 删除子分类
// @Description 先解绑全部菜品再删除子分类，菜品本身保留
// @Tags 子分类
// @Produce json
// @Param id path string true "子分类ID (UUID)"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "子分类不存在"
// @Router /api/v1/subcategories/{id} [delete]
func (h *SubcategoryHandler) Delete(c *gin.Context) {
	subcategory, ok := h.resolve(c)
	if !ok {
		return
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := service.DetachSubcategoryItems(tx, subcategory); err != nil {
			return err
		}
		return tx.Delete(subcategory).Error
	})
	if err != nil {
		InternalError(c, "删除失败: "+SafeErrorMessage(err, "删除失败"))
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}

// resolve 解析路径中的 UUID 并加载子分类（带菜品列表）
func (h *SubcategoryHandler) resolve(c *gin.Context) (*models.Subcategory, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		BadRequest(c, "无效的ID")
		return nil, false
	}
	var subcategory models.Subcategory
	if err := database.DB.Preload("Items").First(&subcategory, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, fmt.Sprintf("子分类不存在: id=%s", id))
			return nil, false
		}
		InternalError(c, "查询失败: "+SafeErrorMessage(err, "查询失败"))
		return nil, false
	}
	return &subcategory, true
}

// resolveCategory 校验并加载 DTO 指定的分类，缺失或不存在都按 404 处理
func (h *SubcategoryHandler) resolveCategory(c *gin.Context, dto *SubcategoryDto) (*models.Category, bool) {
	if dto.CategoryID == nil {
		NotFound(c, "子分类必须指定 categoryId")
		return nil, false
	}
	var category models.Category
	if err := database.DB.First(&category, *dto.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, fmt.Sprintf("分类不存在: id=%d", *dto.CategoryID))
			return nil, false
		}
		InternalError(c, "查询失败: "+SafeErrorMessage(err, "查询失败"))
		return nil, false
	}
	return &category, true
}
