package middleware

import (
	"go-workforce/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger must run after RequestID and AuthMiddleware. It stores a
// logger tagged with the request and caller in the request context.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")
		employeeID := c.GetString("employee_id")

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.String("role", c.GetString("role")),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithEmployeeID(ctx, employeeID)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
