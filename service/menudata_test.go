package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock, func() { sqlDB.Close() }
}

// writeMenuFixture 在临时目录生成菜单数据表格，第一行视为表头
func writeMenuFixture(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "menu-data.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

var menuHeader = []interface{}{"Categoria", "Sottocategoria", "Nome", "Prezzo", "Descrizione", "Tag"}

func TestLoadMenuRows_MissingFile(t *testing.T) {
	// 文件不存在按"无数据"处理，不是错误
	rows, err := LoadMenuRows(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoadMenuRows_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu-data.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("这不是一个工作簿"), 0o644))

	_, err := LoadMenuRows(path)
	assert.Error(t, err)
}

func TestLoadMenuRows_SkipsHeaderAndInvalidRows(t *testing.T) {
	path := writeMenuFixture(t, [][]interface{}{
		menuHeader,
		{"Antipasti", "Mare", "Polpo", "12,50", "Polpo alla griglia", "Novità"},
		{"", "Mare", "SenzaCategoria", "1", "", ""},  // 分类为空，丢弃
		{"Dolci", "", "", "1", "", ""},               // 名称为空，丢弃
		{"  Dolci  ", " ", " Tiramisù ", " 5 ", "", ""}, // 各字段去除首尾空白
		{"Primi", "", "Ragù"}, // 缺失的单元格按空字符串处理
	})

	rows, err := LoadMenuRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, RawMenuRow{
		Category:    "Antipasti",
		Subcategory: "Mare",
		Name:        "Polpo",
		Price:       "12,50",
		Description: "Polpo alla griglia",
		TagLabel:    "Novità",
	}, rows[0])

	assert.Equal(t, "Dolci", rows[1].Category)
	assert.Equal(t, "", rows[1].Subcategory)
	assert.Equal(t, "Tiramisù", rows[1].Name)
	assert.Equal(t, "5", rows[1].Price)

	assert.Equal(t, RawMenuRow{Category: "Primi", Name: "Ragù"}, rows[2])
}

func TestSeedMenuData_EmptyFile_NoDeletes(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	// 只有表头：不删除任何数据，也不报错
	path := writeMenuFixture(t, [][]interface{}{menuHeader})

	require.NoError(t, SeedMenuData(db, path))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedMenuData_BuildsGraphInOrder(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	path := writeMenuFixture(t, [][]interface{}{
		menuHeader,
		{"Antipasti", "Mare", "Polpo", "12,50", "Polpo alla griglia", "Novità"},
		{"Antipasti", "Terra", "Tagliere", "N/A", "", ""},
		{"Antipasti", "Mare", "Cozze", "8.00", "", ""},
		{"Dolci", "", "Tiramisù", "5", "", ""},
	})

	// 按依赖顺序清空：先菜品，再子分类，最后分类
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `items`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `subcategories`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `categories`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// 第 1 行：新分类 Antipasti + 新子分类 Mare（position=1）+ 菜品（带标签）
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").
		WithArgs("antipasti", "Antipasti", nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `subcategories`").
		WithArgs(sqlmock.AnyArg(), "antipasti-mare", "Mare", 1, 1, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `items`").
		WithArgs("Polpo", "Polpo alla griglia", "12.50", 1, sqlmock.AnyArg(), nil,
			"Novità", "menu-tag-default", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// 第 2 行：复用分类，新子分类 Terra（position=2），价格 N/A 归一化为 0.00
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `subcategories`").
		WithArgs(sqlmock.AnyArg(), "antipasti-terra", "Terra", 2, 1, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `items`").
		WithArgs("Tagliere", "", "0.00", 1, sqlmock.AnyArg(), nil,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	// 第 3 行：分类和子分类都复用，只新建菜品
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `items`").
		WithArgs("Cozze", "", "8.00", 1, sqlmock.AnyArg(), nil,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	// 第 4 行：新分类 Dolci，无子分类
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").
		WithArgs("dolci", "Dolci", nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `items`").
		WithArgs("Tiramisù", "", "5.00", 2, nil, nil,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectCommit()

	require.NoError(t, SeedMenuData(db, path))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedMenuData_RowFailureDoesNotAbortRun(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	path := writeMenuFixture(t, [][]interface{}{
		menuHeader,
		{"Antipasti", "", "Polpo", "1", "", ""},
		{"Antipasti", "", "Cozze", "2", "", ""},
		{"Antipasti", "", "Vongole", "3", "", ""},
	})

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `items`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `subcategories`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `categories`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `items`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// 第二个菜品写入失败：记录日志后继续，不重试也不中断
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `items`").WillReturnError(errors.New("duplicate entry"))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `items`").WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	require.NoError(t, SeedMenuData(db, path))
	require.NoError(t, mock.ExpectationsWereMet())
}
