package db

import (
	"errors"

	"milkstore/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Migrate performs automatic migration for the database schema and seeds the roles
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := AutoMigrate(db); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	if err := SeedRoles(db); err != nil {
		logrus.Fatalf("role seeding failed: %v", err) // Log fatal error if seeding fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}

// AutoMigrate creates or updates the schema for every entity
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Store{},
		&domain.Role{},
		&domain.User{},
		&domain.Brand{},
		&domain.Product{},
		&domain.Order{},
		&domain.OrderDetail{},
		&domain.Delivery{},
	)
}

// SeedRoles inserts the fixed role set, skipping roles that already exist
func SeedRoles(db *gorm.DB) error {
	for _, name := range domain.AllRoleNames() {
		var role domain.Role
		err := db.Where("name = ?", name.String()).First(&role).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&domain.Role{Name: name.String()}).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
