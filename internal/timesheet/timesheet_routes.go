package timesheet

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
		employee.POST("/clock-in",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTimesheet, rbac.ActionClock),
			handler.ClockIn,
		)
		employee.POST("/clock-out",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTimesheet, rbac.ActionClock),
			handler.ClockOut,
		)
		employee.GET("/timesheets",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTimesheet, rbac.ActionReadOwn),
			handler.List,
		)
	}

	manager := r.Group("/manager")
	manager.Use(middleware.AuthMiddleware(tokens))
	manager.Use(middleware.ContextLogger(logger))
	{
		manager.GET("/team-timesheets",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTeam, rbac.ActionRead),
			handler.TeamTimesheets,
		)
		manager.PUT("/timesheets/:id/approve",
			middleware.RateLimitByUser(1, 5),
			middleware.RoleMiddleware("manager"),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTimesheet, rbac.ActionDecide),
			handler.Decide,
		)
	}

	hr := r.Group("/hr")
	hr.Use(middleware.AuthMiddleware(tokens))
	hr.Use(middleware.ContextLogger(logger))
	{
		hr.GET("/reports/attendance",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceReport, rbac.ActionRead),
			handler.AttendanceReport,
		)
		hr.PUT("/timesheets/:id/approve",
			middleware.RateLimitByUser(1, 5),
			middleware.RoleMiddleware("hr"),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTimesheet, rbac.ActionDecide),
			handler.Decide,
		)
	}
}
