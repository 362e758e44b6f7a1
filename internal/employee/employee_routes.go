package employee

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
	manager := r.Group("/manager")
	manager.Use(middleware.AuthMiddleware(tokens))
	manager.Use(middleware.ContextLogger(logger))
	{
		manager.POST("/employees",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTeam, rbac.ActionCreate),
			handler.CreateForManager,
		)

		manager.GET("/team",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTeam, rbac.ActionRead),
			handler.GetTeam,
		)

		manager.GET("/available-employees",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTeam, rbac.ActionRead),
			handler.GetAvailable,
		)

		manager.PUT("/team/:employeeId/add",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTeam, rbac.ActionManage),
			handler.AddToTeam,
		)

		manager.PUT("/team/:employeeId/remove",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTeam, rbac.ActionManage),
			handler.RemoveFromTeam,
		)
	}

	hr := r.Group("/hr")
	hr.Use(middleware.AuthMiddleware(tokens))
	hr.Use(middleware.ContextLogger(logger))
	{
		hr.GET("/employees",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.GetAll,
		)

		hr.POST("/employees",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionCreate),
			handler.Create,
		)

		hr.PUT("/employees/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionUpdate),
			handler.Update,
		)
	}
}
