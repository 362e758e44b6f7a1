package auth

import (
	"go-workforce/internal/auth/token"
	"go-workforce/internal/middleware"
	"go-workforce/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacHandler *rbac.Handler, tokens *token.Manager) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(0.2, 5), handler.Refresh)

		authed := auth.Group("")
		authed.Use(middleware.AuthMiddleware(tokens))
		authed.GET("/me", middleware.RateLimitByUser(2, 5), handler.Me)
		authed.GET("/permissions", middleware.RateLimitByUser(2, 5), rbacHandler.Permissions)
		authed.POST("/logout", handler.Logout)
	}
}
