package service

import (
	"path/filepath"
	"testing"

	"milkstore/internal/db"
	"milkstore/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database with the full schema and seeded roles
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "service_test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(conn))
	require.NoError(t, db.SeedRoles(conn))
	return conn
}

// seedUser creates an active user holding the given role
func seedUser(t *testing.T, conn *gorm.DB, username string, role domain.RoleName) *domain.User {
	t.Helper()
	var roleRow domain.Role
	require.NoError(t, conn.Where("name = ?", role.String()).First(&roleRow).Error)
	user := domain.User{
		Username: username,
		Password: "hashed",
		FullName: username + " fullname",
		Email:    username + "@example.com",
		RoleID:   roleRow.ID,
	}
	require.NoError(t, conn.Create(&user).Error)
	return &user
}

// seedProduct creates an active product with the given price and stock
func seedProduct(t *testing.T, conn *gorm.DB, name string, price float64, stock int) *domain.Product {
	t.Helper()
	brand := domain.Brand{Name: name + " brand"}
	require.NoError(t, conn.Create(&brand).Error)
	product := domain.Product{Name: name, Price: price, Stock: stock, BrandID: brand.ID}
	require.NoError(t, conn.Create(&product).Error)
	return &product
}

// currentStock reloads a product and returns its stock counter
func currentStock(t *testing.T, conn *gorm.DB, productID string) int {
	t.Helper()
	var product domain.Product
	require.NoError(t, conn.First(&product, "id = ?", productID).Error)
	return product.Stock
}

// setOrderStatus forces an order into a given status, bypassing the workflows
func setOrderStatus(t *testing.T, conn *gorm.DB, orderID string, status domain.OrderStatus) {
	t.Helper()
	require.NoError(t, conn.Model(&domain.Order{}).Where("id = ?", orderID).Update("order_status", status).Error)
}
