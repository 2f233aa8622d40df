package utils

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/google/uuid"       // UUID generation for the jti claim
)

// TokenLifetime is the fixed expiry window from issuance time
const TokenLifetime = 3 * time.Hour

// JWT Claims
type Claims struct {
	Role                 string `json:"role"`     // Role name claim gating endpoint access
	Username             string `json:"username"` // Username claim
	jwt.RegisteredClaims        // Standard JWT claims (sub carries the user id, jti the token id)
}

// GenerateJWT creates a signed token for a user carrying their id, role and username
func GenerateJWT(userID, role, username, secret string) (string, error) {
	// Set token claims
	claims := Claims{
		Role:     role,     // Role name claim
		Username: username, // Username claim
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,                                             // Subject is the user id
			ID:        uuid.NewString(),                                   // Unique token id
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenLifetime)),  // Token expires after the fixed window
			IssuedAt:  jwt.NewNumericDate(time.Now()),                     // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a JWT token string
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}
