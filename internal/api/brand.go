package api

import (
	"net/http" // HTTP status codes

	"milkstore/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// BrandResponse is the brand view returned to clients
type BrandResponse struct {
	Id   string `json:"id"`   // Brand id
	Name string `json:"name"` // Brand name
}

// GetBrandsHandler returns all brands, optionally filtered by name
func GetBrandsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&domain.Brand{})
		if searchString := c.Query("searchString"); searchString != "" {
			query = query.Where("name LIKE ?", "%"+searchString+"%")
		}
		var brands []domain.Brand
		if err := query.Find(&brands).Error; err != nil {
			writeServiceError(c, err)
			return
		}
		resp := make([]BrandResponse, len(brands))
		for i, brand := range brands {
			resp[i] = BrandResponse{Id: brand.ID, Name: brand.Name}
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetBrandHandler returns one brand
func GetBrandHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brand domain.Brand
		if err := db.First(&brand, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found brand"})
			return
		}
		c.JSON(http.StatusOK, BrandResponse{Id: brand.ID, Name: brand.Name})
	}
}

// UpdateBrandHandler renames a brand
func UpdateBrandHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name *string `json:"name"` // New brand name
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var brand domain.Brand
		if err := db.First(&brand, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found brand"})
			return
		}
		if req.Name != nil {
			brand.Name = *req.Name
		}
		if err := db.Save(&brand).Error; err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, BrandResponse{Id: brand.ID, Name: brand.Name})
	}
}
