package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the authentication endpoints. Login and refresh
// are public and rate limited per client IP; /me requires a valid token.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, requireAuth gin.HandlerFunc, loginLimiter gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", loginLimiter, handler.Login)
		authGroup.POST("/refresh", loginLimiter, handler.Refresh)
		authGroup.POST("/logout", handler.Logout)
		authGroup.GET("/me", requireAuth, handler.Me)
	}
}
