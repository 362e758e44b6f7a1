package payroll

import (
	"time"

	"go-workforce/internal/auth/token"
	"go-workforce/internal/middleware"
	"go-workforce/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyTTL = 24 * time.Hour

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	tokens *token.Manager,
	logger *zap.Logger,
	rdb *redis.Client,
) {
	hr := r.Group("/hr")
	hr.Use(middleware.AuthMiddleware(tokens))
	hr.Use(middleware.ContextLogger(logger))
	{
		hr.GET("/payrolls",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourcePayroll, rbac.ActionRead),
			handler.GetAll,
		)
		hr.GET("/reports/payroll",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceReport, rbac.ActionRead),
			handler.Report,
		)

		process := []gin.HandlerFunc{
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourcePayroll, rbac.ActionProcess),
		}
		if rdb != nil {
			process = append(process, middleware.Idempotency(rdb, idempotencyTTL))
		}
		process = append(process, handler.Process)
		hr.POST("/payroll", process...)
	}
}
