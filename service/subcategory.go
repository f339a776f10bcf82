package service

import (
	"errors"
	"log"

	"grecale/models"

	"gorm.io/gorm"
)

// ErrNotFound 资源不存在
var ErrNotFound = errors.New("资源不存在")

// SyncSubcategoryItems 将子分类的菜品集合同步为目标集合
// itemIDs 为 nil 表示本次请求不调整菜品绑定；空集合表示解绑全部菜品
// 先解绑并落库，再绑定新菜品，避免中间状态的约束冲突
// 目标中不存在的菜品 ID 只记录警告，不影响其余菜品的绑定
// 注意：这里不校验菜品所属分类与子分类所属分类是否一致
func SyncSubcategoryItems(tx *gorm.DB, subcategory *models.Subcategory, itemIDs []uint) error {
	if itemIDs == nil {
		return nil
	}

	// 目标集合去重，保留请求顺序
	target := make(map[uint]struct{}, len(itemIDs))
	ordered := make([]uint, 0, len(itemIDs))
	for _, id := range itemIDs {
		if _, ok := target[id]; ok {
			continue
		}
		target[id] = struct{}{}
		ordered = append(ordered, id)
	}

	// 第一步：解绑不在目标集合中的菜品（不在遍历过程中修改原列表）
	kept := make([]models.Item, 0, len(subcategory.Items))
	for _, item := range subcategory.Items {
		if _, ok := target[item.ID]; ok && item.ID != 0 {
			kept = append(kept, item)
			continue
		}
		if err := tx.Model(&models.Item{}).Where("id = ?", item.ID).Update("subcategory_id", nil).Error; err != nil {
			return err
		}
	}
	subcategory.Items = kept

	// 第二步：目标为空时到此为止
	if len(ordered) == 0 {
		return nil
	}

	// 第三步：批量查出目标菜品
	var fetched []models.Item
	if err := tx.Where("id IN ?", ordered).Find(&fetched).Error; err != nil {
		return err
	}

	// 第四步：请求了但不存在的 ID 只记录警告
	found := make(map[uint]struct{}, len(fetched))
	for _, item := range fetched {
		found[item.ID] = struct{}{}
	}
	for _, id := range ordered {
		if _, ok := found[id]; !ok {
			log.Printf("警告: 菜品 id=%d 不存在，无法绑定到子分类 %s", id, subcategory.ID)
		}
	}

	// 第五步：绑定查到的菜品，成员列表按集合语义去重
	member := make(map[uint]struct{}, len(subcategory.Items))
	for _, item := range subcategory.Items {
		member[item.ID] = struct{}{}
	}
	for i := range fetched {
		if err := tx.Model(&fetched[i]).Update("subcategory_id", subcategory.ID).Error; err != nil {
			return err
		}
		subID := subcategory.ID
		fetched[i].SubcategoryID = &subID
		if _, ok := member[fetched[i].ID]; !ok {
			subcategory.Items = append(subcategory.Items, fetched[i])
			member[fetched[i].ID] = struct{}{}
		}
	}
	return nil
}

// DetachSubcategoryItems 解绑子分类下的全部菜品（删除子分类前调用，避免外键残留）
func DetachSubcategoryItems(tx *gorm.DB, subcategory *models.Subcategory) error {
	for _, item := range subcategory.Items {
		if err := tx.Model(&models.Item{}).Where("id = ?", item.ID).Update("subcategory_id", nil).Error; err != nil {
			return err
		}
	}
	subcategory.Items = nil
	return nil
}
