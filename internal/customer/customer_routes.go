package customer

import (
	"go-sales-report/internal/authz"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the customer master data endpoints: reads for any
// authenticated role, mutations manager-only.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authzService authz.Service, authn []gin.HandlerFunc) {
	customers := r.Group("/customers")
	customers.Use(authn...)
	{
		read := authz.Authorize(authzService, authz.ResourceCustomer, authz.ActionRead)
		write := authz.Authorize(authzService, authz.ResourceCustomer, authz.ActionWrite)

		customers.GET("", read, handler.GetAll)
		customers.GET("/options", read, handler.GetOptions)
		customers.GET("/:id", read, handler.GetByID)
		customers.POST("", write, handler.Create)
		customers.PUT("/:id", write, handler.Update)
		customers.DELETE("/:id", write, handler.Delete)
	}
}
