package leave

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
	employee := r.Group("/employee")
	employee.Use(middleware.AuthMiddleware(tokens))
	employee.Use(middleware.ContextLogger(logger))
	{
		employee.POST("/leave-request",
			middleware.RateLimitByUser(0.2, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionRequest),
			handler.Request,
		)
		employee.GET("/leave-requests",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionReadOwn),
			handler.ListMine,
		)
	}

	manager := r.Group("/manager")
	manager.Use(middleware.AuthMiddleware(tokens))
	manager.Use(middleware.ContextLogger(logger))
	{
		manager.GET("/team-schedules",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTeam, rbac.ActionRead),
			handler.TeamSchedules,
		)
		manager.PUT("/leaves/:id/approve",
			middleware.RateLimitByUser(1, 5),
			middleware.RoleMiddleware("manager"),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionDecide),
			handler.Decide,
		)
	}

	hr := r.Group("/hr")
	hr.Use(middleware.AuthMiddleware(tokens))
	hr.Use(middleware.ContextLogger(logger))
	{
		hr.GET("/reports/leaves",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceReport, rbac.ActionRead),
			handler.Report,
		)
		hr.PUT("/leaves/:id/approve",
			middleware.RateLimitByUser(1, 5),
			middleware.RoleMiddleware("hr"),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionDecide),
			handler.Decide,
		)
	}
}
