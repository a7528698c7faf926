package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"questhub.backend/internal/domain/entities"
)

// Authorizer answers whether a user holds a role. Roles live on the balance
// row, not in the token, so revocation is immediate.
type Authorizer interface {
	IsAuthorized(ctx context.Context, userID uuid.UUID, role entities.BalanceRole) (bool, error)
}

// RequireAdmin gates a route group behind the admin role. Must run after
// AuthMiddleware.
func RequireAdmin(auth Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized",
			})
			return
		}

		isAdmin, err := auth.IsAuthorized(c.Request.Context(), userID, entities.BalanceRoleAdmin)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "internal server error",
			})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Insufficient permissions",
			})
			return
		}

		c.Next()
	}
}
