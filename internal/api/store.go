package api

import (
	"net/http" // HTTP status codes

	"milkstore/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// StoreRequest is the payload for creating or updating the store profile
type StoreRequest struct {
	Name        *string `json:"name"`        // Store name
	Address     *string `json:"address"`     // Store address
	PhoneNumber *string `json:"phoneNumber"` // Contact phone number
	Email       *string `json:"email"`       // Contact email
}

// GetStoreHandler returns the store profile record
func GetStoreHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var store domain.Store
		if err := db.First(&store).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Don't have any store."})
			return
		}
		c.JSON(http.StatusOK, store)
	}
}

// CreateStoreHandler creates the store profile record
func CreateStoreHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var store domain.Store // Bind JSON request to the entity
		if err := c.ShouldBindJSON(&store); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := db.Create(&store).Error; err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, store)
	}
}

// UpdateStoreHandler applies only the non-null fields to the store profile
func UpdateStoreHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StoreRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var store domain.Store
		if err := db.First(&store, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found."})
			return
		}
		// Apply only the fields present in the request
		if req.Name != nil {
			store.Name = *req.Name
		}
		if req.Address != nil {
			store.Address = *req.Address
		}
		if req.PhoneNumber != nil {
			store.PhoneNumber = *req.PhoneNumber
		}
		if req.Email != nil {
			store.Email = *req.Email
		}
		if err := db.Save(&store).Error; err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Store updated"})
	}
}
