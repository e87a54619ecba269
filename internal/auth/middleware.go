package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/queryshape/pkg/response"
)

// AuthRequired is a Gin middleware that validates JWT from Authorization: Bearer <token>.
// Rejected requests receive an Unauthorized envelope.
func AuthRequired(jwtManager *JWTManager) gin.HandlerFunc {
	challenge := map[string]string{"WWW-Authenticate": `Bearer realm="api"`}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortJSON(c, response.Unauthorized[any]("missing Authorization header", challenge))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.AbortJSON(c, response.Unauthorized[any]("invalid Authorization header format", challenge))
			return
		}

		claims, err := jwtManager.ParseAndValidate(parts[1])
		if err != nil {
			response.AbortJSON(c, response.Unauthorized[any]("invalid or expired token", challenge))
			return
		}

		// Store user info into Gin context for later handlers.
		c.Set(userIDKey, claims.Subject)

		c.Next()
	}
}
