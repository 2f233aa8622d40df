package api

import (
	"net/http" // HTTP status codes

	"milkstore/internal/domain" // Importing domain models
	"milkstore/internal/utils"  // Paging utility

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// UpdateUserRequest is the payload for a partial user update
type UpdateUserRequest struct {
	Username    *string `json:"username"`    // New username
	Password    *string `json:"password"`    // New password, re-hashed before storage
	FullName    *string `json:"fullName"`    // New full name
	Email       *string `json:"email"`       // New email address
	PhoneNumber *string `json:"phoneNumber"` // New phone number
}

// GetUsersHandler returns one page of active users, searchable by
// username, email or fullname (ShopStaff/Admin only)
func GetUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pageIndex, pageSize := pageParams(c)
		query := db.Model(&domain.User{}).Where("is_deleted = ?", false)
		if searchString := c.Query("searchString"); searchString != "" {
			switch c.Query("searchBy") {
			case "username":
				query = query.Where("username LIKE ?", "%"+searchString+"%")
			case "email":
				query = query.Where("email LIKE ?", "%"+searchString+"%")
			default:
				query = query.Where("full_name LIKE ?", "%"+searchString+"%")
			}
		}
		page, err := utils.Paginate[domain.User](query, pageIndex, pageSize)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetUserHandler returns one active user
func GetUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user domain.User
		if err := db.Where("is_deleted = ?", false).First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateUserHandler applies only the non-null fields to a user; a new password
// is hashed before it is stored
func UpdateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.User
		if err := db.Where("is_deleted = ?", false).First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found user"})
			return
		}
		// Apply only the fields present in the request
		if req.Username != nil {
			user.Username = *req.Username
		}
		if req.Email != nil {
			user.Email = *req.Email
		}
		if req.FullName != nil {
			user.FullName = *req.FullName
		}
		if req.PhoneNumber != nil {
			user.PhoneNumber = *req.PhoneNumber
		}
		if req.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
				return
			}
			user.Password = string(hash)
		}
		if err := db.Save(&user).Error; err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DeleteUserHandler soft-deletes a user; the row stays for the referential
// integrity of historical orders and deliveries
func DeleteUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user domain.User
		if err := db.Where("is_deleted = ?", false).First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found user"})
			return
		}
		if err := db.Model(&user).Update("is_deleted", true).Error; err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Deleted user"})
	}
}
