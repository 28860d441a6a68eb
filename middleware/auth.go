package middleware

import (
	"net/http"
	"strings"

	userRepo "github.com/awalle000/Fadila-sales-system/database/repository/user"
	"github.com/awalle000/Fadila-sales-system/models"
	"github.com/awalle000/Fadila-sales-system/utils"

	"github.com/gin-gonic/gin"
)

// actorKey is the context key under which the authenticated actor is stored.
const actorKey = "actor"

// JWTAuthMiddleware validates the bearer token, resolves the account and
// stores the actor snapshot in the request context. A deactivated
// account is rejected even with a valid token.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, _, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		user, err := repo.GetByID(userID)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account deactivated"})
			return
		}

		c.Set(actorKey, models.Actor{ID: user.ID, Name: user.Name, Role: user.Role})
		c.Next()
	}
}

// GetActor returns the authenticated actor set by JWTAuthMiddleware.
func GetActor(c *gin.Context) (models.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}
