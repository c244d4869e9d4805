package middleware

import (
	"net/http"
	"strings"

	"doctorchamber/utils"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey is where the verified identity claim lands in the gin
// context.
const ContextEmailKey = "email"

// JWTAuthMiddleware gates a route on a bearer token. A missing credential is
// Unauthorized; a credential that fails signature or expiry checks is
// Forbidden. On success the email claim is exposed to downstream handlers.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Request forbidden"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// VerifiedEmail returns the identity claim set by JWTAuthMiddleware.
func VerifiedEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}
