package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"laundry_express_back_end/internal/models"
)

// RequireAdmin vérifie que l'utilisateur a un des trois rôles d'administration.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if !models.IsAdminRole(role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePlatformAdmin : réservé à platform_admin / super_admin (création de
// business, opérations plateforme).
func RequirePlatformAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if !models.CanManageBusinesses(role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Platform admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
