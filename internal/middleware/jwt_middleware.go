package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HemInfotech/hem_api/internal/utils"
)

// JWTMiddleware guards the admin API with bearer session tokens.
type JWTMiddleware struct {
	tokens *utils.TokenIssuer
}

func NewJWTMiddleware(tokens *utils.TokenIssuer) *JWTMiddleware {
	return &JWTMiddleware{tokens: tokens}
}

func (m *JWTMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateJWT(parts[1])
		if err != nil {
			utils.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Next()
	}
}
