package middleware

import (
	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware pose user_id si un token valide est fourni,
// et laisse passer en anonyme sinon.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := userIDFromHeader(c.GetHeader("Authorization")); err == nil {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}
