package api

import (
	"net/http" // HTTP status codes

	"milkstore/internal/domain" // Importing domain models
	"milkstore/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for registration
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,max=50"`        // Username must be provided
	Password    string `json:"password" binding:"required,min=6,max=100"` // Password must be provided
	FullName    string `json:"fullName" binding:"max=100"`                // Full name
	Email       string `json:"email" binding:"required,email"`            // Email must be provided
	PhoneNumber string `json:"phoneNumber" binding:"max=15"`              // Phone number
	Role        int    `json:"role" binding:"required"`                   // Numeric role code
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// RegisterHandler creates a user with the requested role
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// The declared role code must map to a known role
		roleName, ok := domain.RoleNameFromCode(req.Role)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role."})
			return
		}
		// Retrieve the seeded role row
		var role domain.Role
		if err := db.Where("name = ?", roleName.String()).First(&role).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role not found."})
			return
		}
		// Check if the username or email already exists
		var existing domain.User
		if err := db.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists."})
			return
		}
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := domain.User{
			Username:    req.Username,
			Password:    string(hash),
			FullName:    req.FullName,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			RoleID:      role.ID,
		}
		// Attempt to create the user in the database
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to register user."})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "User registered successfully."})
	}
}

// LoginHandler authenticates a user and returns a signed bearer token
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Look up the user by exact username among active users
		var user domain.User
		if err := db.Preload("Role").Where("username = ? AND is_deleted = ?", req.Username, false).First(&user).Error; err != nil {
			// The same response as a bad password, so the reply does not reveal
			// whether the username exists
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password."})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password."})
			return
		}
		// A user without a role cannot receive a role claim
		if user.Role == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User has no role"})
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, user.Role.Name, user.Username, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}
