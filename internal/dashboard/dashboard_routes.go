package dashboard

import (
	"go-workforce/internal/auth/token"
	"go-workforce/internal/middleware"
	"go-workforce/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	tokens *token.Manager,
	logger *zap.Logger,
) {
	hr := r.Group("/hr")
	hr.Use(middleware.AuthMiddleware(tokens))
	hr.Use(middleware.ContextLogger(logger))
	{
		hr.GET("/stats",
			middleware.RateLimitByUser(5, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDashboard, rbac.ActionRead),
			handler.Stats,
		)
		hr.GET("/pending-requests",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDashboard, rbac.ActionRead),
			handler.PendingRequests,
		)
	}
}
