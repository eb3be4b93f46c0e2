// api/middleware/session.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foxonlabs/foxon-backend/internal/auth"
)

// SessionMiddleware resolves the Bearer session marker, if any, and puts
// the role on the context under "role". Requests without a token pass
// through anonymously; routes that need a role check it themselves.
func SessionMiddleware(sessionSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		role, err := auth.ValidateSessionToken(strings.TrimPrefix(header, "Bearer "), sessionSecret)
		if err != nil {
			// A bad token is treated the same as no token: anonymous.
			customLog.Warnf("SessionMiddleware: rejecting session token: %v", err)
			c.Next()
			return
		}

		c.Set("role", role)
		c.Next()
	}
}
