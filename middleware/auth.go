package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/OJ217/music-lab-api/helpers"
	"github.com/OJ217/music-lab-api/utils"
)

// ClaimsKey is where Authenticate stores the verified token claims in the
// request context.
const ClaimsKey = "claims"

func Authenticate(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			utils.Unauthorized(c, "Missing authorization token")
			return
		}

		claims, err := helpers.ValidateToken(jwtSecret, tokenString)
		if err != nil {
			if errors.Is(err, helpers.ErrTokenExpired) {
				utils.Unauthorized(c, "Token expired")
			} else {
				utils.Unauthorized(c, "Invalid token")
			}
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
