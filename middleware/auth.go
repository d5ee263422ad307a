package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"webepex/auth"
)

// AuthRequired gates a route behind a bearer token. The header must be
// exactly "Bearer <token>"; any other shape is treated as no token at all.
// A missing token and a bad token produce the identical response, so the
// error body never reveals which case occurred.
func AuthRequired(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}

		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Unauthorized",
	})
}
