package report

import (
	"go-sales-report/internal/authz"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the daily report endpoints. Reads are open to any
// authenticated sales person; row-level ownership is enforced in the
// service. Mutations are restricted to the sales role by policy, and to
// the owning author by the service.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authzService authz.Service, authn []gin.HandlerFunc, extra ...gin.HandlerFunc) {
	reports := r.Group("/reports")
	reports.Use(authn...)
	{
		reports.GET("", authz.Authorize(authzService, authz.ResourceReport, authz.ActionRead), handler.List)
		reports.GET("/:id", authz.Authorize(authzService, authz.ResourceReport, authz.ActionRead), handler.GetByID)

		create := []gin.HandlerFunc{authz.Authorize(authzService, authz.ResourceReport, authz.ActionCreate)}
		create = append(create, extra...)
		create = append(create, handler.Create)
		reports.POST("", create...)

		reports.PUT("/:id", authz.Authorize(authzService, authz.ResourceReport, authz.ActionUpdate), handler.Update)
		reports.DELETE("/:id", authz.Authorize(authzService, authz.ResourceReport, authz.ActionDelete), handler.Delete)
	}
}
