package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	userRepo "prolink/database/repository/user"
	"prolink/utils"
)

// ContextUserIDKey is where the resolved acting identity is stored on the
// request context.
const ContextUserIDKey = "userID"

// JWTAuthUserMiddleware authenticates the bearer token and verifies the
// subject still resolves to a stored user.
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		rec, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			utils.JSONError(c, err)
			c.Abort()
			return
		}
		if rec == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}
