package api

import (
	"errors"
	"fmt"
	"strconv"

	"grecale/database"
	"grecale/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CrudHandler 通用增删改查处理器
// 每个实体/DTO 对通过 toDto / apply 两个转换函数接入，按类型参数化而非继承
type CrudHandler[E any, D any] struct {
	name     string   // 资源名称，用于错误消息
	preloads []string // 查询时需要预加载的关联
	toDto    func(*E) D
	apply    func(tx *gorm.DB, entity *E, dto *D) error
}

func (h *CrudHandler[E, D]) query() *gorm.DB {
	q := database.DB
	for _, preload := range h.preloads {
		q = q.Preload(preload)
	}
	return q
}

// List 列出全部资源
func (h *CrudHandler[E, D]) List(c *gin.Context) {
	var entities []E
	if err := h.query().Find(&entities).Error; err != nil {
		InternalError(c, "查询失败: "+SafeErrorMessage(err, "查询失败"))
		return
	}
	dtos := make([]D, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, h.toDto(&entities[i]))
	}
	Success(c, dtos)
}

// Get 按 ID 获取单个资源
func (h *CrudHandler[E, D]) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var entity E
	if err := h.query().First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, fmt.Sprintf("%s不存在: id=%d", h.name, id))
			return
		}
		InternalError(c, "查询失败: "+SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, h.toDto(&entity))
}

// Create 创建资源
func (h *CrudHandler[E, D]) Create(c *gin.Context) {
	var dto D
	if err := c.ShouldBindJSON(&dto); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	var entity E
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.apply(tx, &entity, &dto); err != nil {
			return err
		}
		return tx.Create(&entity).Error
	})
	if err != nil {
		h.writeError(c, err, "创建失败")
		return
	}
	SuccessWithMessage(c, "创建成功", h.toDto(&entity))
}

// Update 更新资源
func (h *CrudHandler[E, D]) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var entity E
	if err := database.DB.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, fmt.Sprintf("%s不存在: id=%d", h.name, id))
			return
		}
		InternalError(c, "查询失败: "+SafeErrorMessage(err, "查询失败"))
		return
	}
	var dto D
	if err := c.ShouldBindJSON(&dto); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.apply(tx, &entity, &dto); err != nil {
			return err
		}
		return tx.Save(&entity).Error
	})
	if err != nil {
		h.writeError(c, err, "更新失败")
		return
	}
	SuccessWithMessage(c, "更新成功", h.toDto(&entity))
}

// Delete 删除资源
func (h *CrudHandler[E, D]) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var entity E
	if err := database.DB.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, fmt.Sprintf("%s不存在: id=%d", h.name, id))
			return
		}
		InternalError(c, "查询失败: "+SafeErrorMessage(err, "查询失败"))
		return
	}
	if err := database.DB.Delete(&entity).Error; err != nil {
		InternalError(c, "删除失败: "+SafeErrorMessage(err, "删除失败"))
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}

func (h *CrudHandler[E, D]) parseID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return 0, false
	}
	return uint(id64), true
}

func (h *CrudHandler[E, D]) writeError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, service.ErrNotFound) {
		NotFound(c, err.Error())
		return
	}
	InternalError(c, fallback+": "+SafeErrorMessage(err, fallback))
}
