package middleware

import (
	"net/http"
	"strings"

	"github.com/awalle000/Fadila-sales-system/models"

	"github.com/gin-gonic/gin"
)

// Authorize allows only the named roles past. Must run after
// JWTAuthMiddleware.
func Authorize(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Access denied. This action requires " + strings.Join(roles, " or ") + " role.",
		})
	}
}

// CEOOnly restricts a route to the CEO role.
func CEOOnly() gin.HandlerFunc {
	return Authorize(models.RoleCEO)
}

// ManagerOrCEO restricts a route to staff roles.
func ManagerOrCEO() gin.HandlerFunc {
	return Authorize(models.RoleManager, models.RoleCEO)
}
