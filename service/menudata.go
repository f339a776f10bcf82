package service

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"grecale/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// 菜单数据表格的固定列（第一行为表头）
const (
	categoryColumn    = 0
	subcategoryColumn = 1
	itemNameColumn    = 2
	priceColumn       = 3
	descriptionColumn = 4
	tagLabelColumn    = 5
)

// defaultTagCssClass 导入时标签统一使用的样式类
const defaultTagCssClass = "menu-tag-default"

// RawMenuRow 菜单数据表格中的一行（仅导入时使用，不落库）
type RawMenuRow struct {
	Category    string
	Subcategory string
	Name        string
	Price       string
	Description string
	TagLabel    string
}

// LoadMenuRows 读取菜单数据表格的第一个工作表
// 跳过表头行；分类或菜品名称为空的行直接丢弃
// 文件不存在或没有工作表按"无数据"处理，返回空结果而不是错误
func LoadMenuRows(path string) ([]RawMenuRow, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("菜单数据文件 %s 不存在，跳过导入", path)
			return nil, nil
		}
		return nil, fmt.Errorf("访问菜单数据文件 %s 失败: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("打开菜单数据文件 %s 失败: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		log.Printf("菜单数据文件 %s 没有工作表，跳过导入", path)
		return nil, nil
	}

	iter, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("读取工作表 %s 失败: %w", sheet, err)
	}
	defer iter.Close()

	var rows []RawMenuRow
	rowNum := -1
	for iter.Next() {
		rowNum++
		if rowNum == 0 {
			// 表头行
			continue
		}
		cols, err := iter.Columns()
		if err != nil {
			return nil, fmt.Errorf("读取第 %d 行失败: %w", rowNum, err)
		}

		category := readCell(cols, categoryColumn)
		if category == "" {
			continue
		}
		name := readCell(cols, itemNameColumn)
		if name == "" {
			continue
		}

		rows = append(rows, RawMenuRow{
			Category:    category,
			Subcategory: readCell(cols, subcategoryColumn),
			Name:        name,
			Price:       readCell(cols, priceColumn),
			Description: readCell(cols, descriptionColumn),
			TagLabel:    readCell(cols, tagLabelColumn),
		})
	}

	return rows, nil
}

// SeedMenuData 从菜单数据表格重建分类/子分类/菜品
// 没有有效数据行时不做任何删除；单行失败只记录日志，不中断整个导入
func SeedMenuData(db *gorm.DB, path string) error {
	rows, err := LoadMenuRows(path)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		log.Printf("菜单数据为空，跳过导入")
		return nil
	}

	log.Printf("开始导入菜单数据（%d 行）", len(rows))

	// 按依赖顺序清空现有数据：先菜品，再子分类，最后分类
	session := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := session.Delete(&models.Item{}).Error; err != nil {
		return fmt.Errorf("清空菜品失败: %w", err)
	}
	if err := session.Delete(&models.Subcategory{}).Error; err != nil {
		return fmt.Errorf("清空子分类失败: %w", err)
	}
	if err := session.Delete(&models.Category{}).Error; err != nil {
		return fmt.Errorf("清空分类失败: %w", err)
	}

	categoriesByName := make(map[string]*models.Category)
	subcategoriesByKey := make(map[string]*models.Subcategory)
	itemsCreated := 0

	for _, row := range rows {
		if err := importMenuRow(db, row, categoriesByName, subcategoriesByKey); err != nil {
			log.Printf("导入菜单行失败 分类=%q 菜品=%q: %v", row.Category, row.Name, err)
			continue
		}
		itemsCreated++
	}

	log.Printf("菜单数据导入完成: %d 个分类, %d 个子分类, %d 个菜品",
		len(categoriesByName), len(subcategoriesByKey), itemsCreated)
	return nil
}

// importMenuRow 导入单行数据：按需创建分类和子分类，再创建菜品
func importMenuRow(db *gorm.DB, row RawMenuRow, categoriesByName map[string]*models.Category, subcategoriesByKey map[string]*models.Subcategory) error {
	category, ok := categoriesByName[row.Category]
	if !ok {
		created, err := createCategory(db, row.Category)
		if err != nil {
			return err
		}
		categoriesByName[row.Category] = created
		category = created
	}

	var subcategory *models.Subcategory
	if row.Subcategory != "" {
		key := category.Code + "|" + row.Subcategory
		sub, ok := subcategoriesByKey[key]
		if !ok {
			created, err := createSubcategory(db, category, row.Subcategory)
			if err != nil {
				return err
			}
			subcategoriesByKey[key] = created
			sub = created
		}
		subcategory = sub
	}

	item := models.Item{
		Name:        row.Name,
		Description: row.Description,
		Price:       ParsePrice(row.Price),
		CategoryID:  category.ID,
		PhotoUrl:    nil, // 导入的菜品没有图片
		Tag:         toItemTag(row.TagLabel),
	}
	if subcategory != nil {
		item.SubcategoryID = &subcategory.ID
	}
	if err := db.Create(&item).Error; err != nil {
		return err
	}

	category.Items = append(category.Items, item)
	if subcategory != nil {
		subcategory.Items = append(subcategory.Items, item)
	}
	return nil
}

func createCategory(db *gorm.DB, name string) (*models.Category, error) {
	category := &models.Category{
		Code: Slugify(name),
		Name: name,
	}
	if err := db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func createSubcategory(db *gorm.DB, category *models.Category, name string) (*models.Subcategory, error) {
	subcategory := &models.Subcategory{
		Slug: Slugify(category.Code + "-" + name),
		Name: name,
		// 同一分类内按首次出现顺序从 1 开始编号
		Position:   len(category.Subcategories) + 1,
		CategoryID: category.ID,
	}
	if err := db.Create(subcategory).Error; err != nil {
		return nil, err
	}
	category.Subcategories = append(category.Subcategories, *subcategory)
	return subcategory, nil
}

func toItemTag(label string) *models.ItemTag {
	if label == "" {
		return nil
	}
	return &models.ItemTag{Label: label, CssClass: defaultTagCssClass}
}

func readCell(cols []string, index int) string {
	if index >= len(cols) {
		return ""
	}
	return strings.TrimSpace(cols[index])
}
