package service

import (
	"testing"

	"grecale/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subcategoryFixture(itemIDs ...uint) *models.Subcategory {
	sub := &models.Subcategory{
		ID:         uuid.New(),
		Slug:       "antipasti-mare",
		Name:       "Mare",
		Position:   1,
		CategoryID: 1,
	}
	for _, id := range itemIDs {
		sub.Items = append(sub.Items, models.Item{ID: id, CategoryID: 1})
	}
	return sub
}

func TestSyncSubcategoryItems_NilMeansNoChange(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	sub := subcategoryFixture(1, 2)

	// itemIds 缺省：不产生任何 SQL，成员列表原样保留
	require.NoError(t, SyncSubcategoryItems(db, sub, nil))
	require.Len(t, sub.Items, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncSubcategoryItems_DetachThenAttach(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	sub := subcategoryFixture(1, 2, 3)

	// 菜品 1 不在目标集合中，先解绑
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `items`").
		WithArgs(nil, sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// 批量查出目标菜品，4 不存在
	mock.ExpectQuery("SELECT \\* FROM `items`").
		WithArgs(2, 3, 4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category_id", "subcategory_id"}).
			AddRow(2, "Cozze", 1, sub.ID.String()).
			AddRow(3, "Vongole", 1, sub.ID.String()))

	// 查到的菜品逐个绑定
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `items`").
		WithArgs(sub.ID.String(), sqlmock.AnyArg(), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `items`").
		WithArgs(sub.ID.String(), sqlmock.AnyArg(), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, SyncSubcategoryItems(db, sub, []uint{2, 3, 4}))
	require.NoError(t, mock.ExpectationsWereMet())

	ids := make([]uint, 0, len(sub.Items))
	for _, item := range sub.Items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []uint{2, 3}, ids)
}

func TestSyncSubcategoryItems_DuplicateIDsCollapse(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	sub := subcategoryFixture()

	// 重复的目标 ID 去重后只查询和绑定一次
	mock.ExpectQuery("SELECT \\* FROM `items`").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category_id"}).
			AddRow(7, "Polpo", 1))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `items`").
		WithArgs(sub.ID.String(), sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, SyncSubcategoryItems(db, sub, []uint{7, 7, 7}))
	require.NoError(t, mock.ExpectationsWereMet())
	require.Len(t, sub.Items, 1)
	assert.Equal(t, uint(7), sub.Items[0].ID)
}

func TestSyncSubcategoryItems_EmptyTargetDetachesAll(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	sub := subcategoryFixture(1, 2)

	for _, id := range []uint{1, 2} {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `items`").
			WithArgs(nil, sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
	}

	// 空集合（非 nil）表示清空绑定，不触发查询
	require.NoError(t, SyncSubcategoryItems(db, sub, []uint{}))
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, sub.Items)
}

func TestDetachSubcategoryItems(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	sub := subcategoryFixture(5, 6)

	for _, id := range []uint{5, 6} {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `items`").
			WithArgs(nil, sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
	}

	require.NoError(t, DetachSubcategoryItems(db, sub))
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, sub.Items)
}
