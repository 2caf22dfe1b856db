package middleware

import (
	"strings"

	"github.com/chaatcart/kiosk-api/internal/presentation/http/dto/response"
	"github.com/chaatcart/kiosk-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards admin routes with the session token. The SSE stream
// also accepts the token as a query parameter because EventSource cannot set
// headers.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				response.Unauthorized(c, "Invalid authorization header format")
				c.Abort()
				return
			}
			tokenString = parts[1]
		} else {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			response.Unauthorized(c, "Authorization is required")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAdminToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("admin_role", claims.Role)

		c.Next()
	}
}
