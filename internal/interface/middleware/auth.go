package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/quickchance/quickchance-backend/pkg/helpers"
	"github.com/quickchance/quickchance-backend/pkg/response"
)

// Auth validates the bearer token issued at login and sets userID and role
// in the Gin context on success.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			response.Abort(c, http.StatusUnauthorized, "Missing bearer token")
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Invalid token")
			return
		}
		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
