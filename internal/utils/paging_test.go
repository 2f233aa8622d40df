package utils

import (
	"fmt"
	"path/filepath"
	"testing"

	"milkstore/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database with the brand table migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "paging_test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Brand{}))
	return db
}

func seedBrands(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, db.Create(&domain.Brand{Name: fmt.Sprintf("Brand %02d", i)}).Error)
	}
}

func TestPaginateMiddlePage(t *testing.T) {
	db := newTestDB(t)
	seedBrands(t, db, 25)

	page, err := Paginate[domain.Brand](db.Model(&domain.Brand{}).Order("name"), 2, 10)
	require.NoError(t, err)

	assert.Len(t, page.Items, 10)
	assert.Equal(t, "Brand 11", page.Items[0].Name)
	assert.Equal(t, int64(25), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasPreviousPage)
	assert.True(t, page.HasNextPage)
}

func TestPaginateLastPartialPage(t *testing.T) {
	db := newTestDB(t)
	seedBrands(t, db, 25)

	page, err := Paginate[domain.Brand](db.Model(&domain.Brand{}).Order("name"), 3, 10)
	require.NoError(t, err)

	assert.Len(t, page.Items, 5)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasPreviousPage)
	assert.False(t, page.HasNextPage)
}

func TestPaginateOutOfRangePage(t *testing.T) {
	db := newTestDB(t)
	seedBrands(t, db, 25)

	// A page beyond the end returns no items but still reports correct counts
	page, err := Paginate[domain.Brand](db.Model(&domain.Brand{}).Order("name"), 7, 10)
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, int64(25), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasPreviousPage)
	assert.False(t, page.HasNextPage)
}

func TestPaginateCountsFilteredRows(t *testing.T) {
	db := newTestDB(t)
	seedBrands(t, db, 25)

	// The filter must apply before counting, not only before slicing
	query := db.Model(&domain.Brand{}).Where("name LIKE ?", "%1%").Order("name")
	page, err := Paginate[domain.Brand](query, 1, 5)
	require.NoError(t, err)

	// Brand 01, 10..19, 21: 12 matches
	assert.Equal(t, int64(12), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 5)
	assert.False(t, page.HasPreviousPage)
	assert.True(t, page.HasNextPage)
}

func TestPaginateEmptyResult(t *testing.T) {
	db := newTestDB(t)

	page, err := Paginate[domain.Brand](db.Model(&domain.Brand{}), 1, 10)
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.TotalCount)
	assert.Equal(t, 0, page.TotalPages)
	assert.False(t, page.HasPreviousPage)
	assert.False(t, page.HasNextPage)
}

func TestMapPageKeepsMetadata(t *testing.T) {
	db := newTestDB(t)
	seedBrands(t, db, 12)

	page, err := Paginate[domain.Brand](db.Model(&domain.Brand{}).Order("name"), 2, 5)
	require.NoError(t, err)

	names := MapPage(page, func(b domain.Brand) string { return b.Name })

	assert.Equal(t, []string{"Brand 06", "Brand 07", "Brand 08", "Brand 09", "Brand 10"}, names.Items)
	assert.Equal(t, page.PageIndex, names.PageIndex)
	assert.Equal(t, page.PageSize, names.PageSize)
	assert.Equal(t, page.TotalCount, names.TotalCount)
	assert.Equal(t, page.TotalPages, names.TotalPages)
	assert.Equal(t, page.HasPreviousPage, names.HasPreviousPage)
	assert.Equal(t, page.HasNextPage, names.HasNextPage)
}
