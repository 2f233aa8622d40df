package api

import (
	"net/http" // HTTP status codes

	"milkstore/internal/domain" // Importing domain models
	"milkstore/internal/utils"  // Paging utility

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// ProductRequest is the payload for creating a product
type ProductRequest struct {
	Name        string  `json:"name" binding:"required,max=100"` // Product name must be provided
	Description string  `json:"description" binding:"max=500"`   // Product description
	Price       float64 `json:"price" binding:"required,gt=0"`   // Unit price must be positive
	Stock       int     `json:"stock" binding:"gte=0"`           // Stock can't be negative
	ImageUrl    string  `json:"imageUrl"`                        // Image URL
	BrandId     string  `json:"brandId" binding:"required"`      // Owning brand
}

// ProductUpdateRequest is the payload for a partial product update
type ProductUpdateRequest struct {
	Name        *string  `json:"name"`        // New product name
	Description *string  `json:"description"` // New description
	Price       *float64 `json:"price"`       // New unit price
	Stock       *int     `json:"stock"`       // New stock count
	ImageUrl    *string  `json:"imageUrl"`    // New image URL
}

// ProductResponse is the product view returned to clients
type ProductResponse struct {
	Id          string  `json:"id"`          // Product id
	Name        string  `json:"name"`        // Product name
	Description string  `json:"description"` // Product description
	Price       float64 `json:"price"`       // Unit price
	Stock       int     `json:"stock"`       // Units in stock
	ImageUrl    string  `json:"imageUrl"`    // Image URL
	BrandName   string  `json:"brandName"`   // Resolved brand name
}

// toProductResponse maps a product entity to its response view
func toProductResponse(p domain.Product) ProductResponse {
	resp := ProductResponse{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageUrl:    p.ImageUrl,
	}
	if p.Brand != nil {
		resp.BrandName = p.Brand.Name // Map the brand name if the brand exists
	}
	return resp
}

// GetProductsHandler returns one page of active products, searchable by
// name, description or brand name
func GetProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pageIndex, pageSize := pageParams(c)
		query := db.Model(&domain.Product{}).Preload("Brand").Where("products.is_deleted = ?", false)
		if searchString := c.Query("searchString"); searchString != "" {
			switch c.Query("searchBy") {
			case "description":
				query = query.Where("products.description LIKE ?", "%"+searchString+"%")
			case "brand":
				query = query.Joins("JOIN brands ON brands.id = products.brand_id").
					Where("brands.name LIKE ?", "%"+searchString+"%")
			default:
				query = query.Where("products.name LIKE ?", "%"+searchString+"%")
			}
		}
		page, err := utils.Paginate[domain.Product](query, pageIndex, pageSize)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, utils.MapPage(page, toProductResponse))
	}
}

// GetProductHandler returns one active product
func GetProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product domain.Product
		if err := db.Preload("Brand").Where("is_deleted = ?", false).First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found product"})
			return
		}
		c.JSON(http.StatusOK, toProductResponse(product))
	}
}

// CreateProductHandler creates a product (Admin only)
func CreateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		product := domain.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Stock:       req.Stock,
			ImageUrl:    req.ImageUrl,
			BrandID:     req.BrandId,
		}
		if err := db.Create(&product).Error; err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toProductResponse(product))
	}
}

// UpdateProductHandler applies only the non-null fields to a product (Admin only)
func UpdateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductUpdateRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var product domain.Product
		if err := db.Where("is_deleted = ?", false).First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found product"})
			return
		}
		// Apply only the fields present in the request
		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Price != nil {
			product.Price = *req.Price
		}
		if req.Stock != nil {
			product.Stock = *req.Stock
		}
		if req.ImageUrl != nil {
			product.ImageUrl = *req.ImageUrl
		}
		if err := db.Save(&product).Error; err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
	}
}

// DeleteProductHandler soft-deletes a product (Admin only); the row stays for
// the referential integrity of historical orders
func DeleteProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product domain.Product
		if err := db.Where("is_deleted = ?", false).First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found product"})
			return
		}
		if err := db.Model(&product).Update("is_deleted", true).Error; err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
