package middleware

import (
	"net/http" // HTTP status codes

	"milkstore/internal/domain" // Importing domain role names

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequireRoles checks the role claim from the token against the endpoint's allowed roles
func RequireRoles(roles ...domain.RoleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role") // Get role claim from context
		// Check if the role claim exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Check if the role claim matches one of the allowed roles
		for _, allowed := range roles {
			if role == allowed.String() {
				c.Next() // Proceed to the next handler
				return
			}
		}
		// If no allowed role matched, abort with forbidden status
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	}
}
