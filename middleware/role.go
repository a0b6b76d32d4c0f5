package middleware

import (
	"net/http"

	"dochouse/models"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
)

// Authorize is the authorization policy: it decides whether a subject may
// perform an action gated on requiredRole. Independent of the transport
// framework so it can be exercised directly.
func Authorize(claims *utils.AuthClaims, requiredRole string) bool {
	if requiredRole == "" {
		return true
	}
	return claims != nil && claims.Role == requiredRole
}

// RequireAdmin gates a route on the admin role. Must run after
// JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Authorize(ClaimsFrom(c), models.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: admin role required"})
			return
		}
		c.Next()
	}
}
