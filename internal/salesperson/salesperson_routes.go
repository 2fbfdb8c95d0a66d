package salesperson

import (
	"go-sales-report/internal/authz"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the sales-person master data endpoints. The whole
// resource, reads included, is manager-only.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authzService authz.Service, authn []gin.HandlerFunc) {
	people := r.Group("/sales-persons")
	people.Use(authn...)
	people.Use(authz.Authorize(authzService, authz.ResourceSalesPerson, authz.ActionManage))
	{
		people.GET("", handler.GetAll)
		people.GET("/:id", handler.GetByID)
		people.POST("", handler.Create)
		people.PUT("/:id", handler.Update)
		people.DELETE("/:id", handler.Delete)
	}
}
