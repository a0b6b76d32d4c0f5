package middleware

import (
	"net/http"
	"strings"

	"dochouse/utils"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key the verified token claims are stored under.
const ClaimsKey = "authClaims"

// JWTAuthMiddleware verifies the bearer token and stores its claims in the
// request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the verified claims stored by JWTAuthMiddleware.
func ClaimsFrom(c *gin.Context) *utils.AuthClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*utils.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}
