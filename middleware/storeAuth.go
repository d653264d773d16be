package middleware

import (
	"net/http"
	"strings"

	"agendly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by StoreAuthMiddleware.
const (
	StoreIDKey = "storeID"
	RoleKey    = "role"
)

// StoreAuthMiddleware validates the store owner's bearer token and puts the store id in the
// gin context.
func StoreAuthMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractStoreClaims(tokenString)
		if err != nil {
			logger.Debug("rejected store token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if claims.Role != utils.RoleOwner {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Store owner access required"})
			return
		}

		c.Set(StoreIDKey, claims.StoreID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}
