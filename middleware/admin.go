package middleware

import (
	"net/http"

	"doctorchamber/services/user"

	"github.com/gin-gonic/gin"
)

// AdminGateMiddleware allows the wrapped operation only when the verified
// identity's user record carries the admin role. Composed after
// JWTAuthMiddleware.
func AdminGateMiddleware(userSvc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := VerifiedEmail(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Request Forbidden"})
			return
		}

		isAdmin, err := userSvc.IsAdmin(email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify role"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Request Forbidden"})
			return
		}

		c.Next()
	}
}
