package middleware

import (
	"strings"

	autherrors "go-workforce/internal/auth/errors"
	"go-workforce/internal/auth/token"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts a bearer token or the access_token cookie and puts
// employee_id and role on the gin context.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		claims, err := tokens.Parse(tokenString, token.TypeAccess)
		if err != nil {
			abortWith(c, err)
			return
		}

		c.Set("employee_id", claims.EmployeeID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RoleMiddleware admits only the listed roles.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}
		abortWith(c, autherrors.ErrForbidden)
	}
}

func abortWith(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
	c.Abort()
}
