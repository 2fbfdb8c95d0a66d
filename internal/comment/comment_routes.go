package comment

import (
	"go-sales-report/internal/authz"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the comment endpoints under a report. Writing is a
// manager capability; reading is open to any authenticated sales person,
// with report ownership checked in the service.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authzService authz.Service, authn []gin.HandlerFunc) {
	comments := r.Group("/reports/:id/comments")
	comments.Use(authn...)
	{
		comments.GET("", authz.Authorize(authzService, authz.ResourceComment, authz.ActionRead), handler.ListByReport)
		comments.POST("", authz.Authorize(authzService, authz.ResourceComment, authz.ActionCreate), handler.Create)
	}
}
