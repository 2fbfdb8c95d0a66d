package authz

import (
	"net/http"

	"go-sales-report/internal/shared/apperror"
	"go-sales-report/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Authorize rejects the request with 403 FORBIDDEN unless the caller's role
// is allowed to perform action on resource. Must run after RequireAuth.
func Authorize(service Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeTokenMissing, apperror.ErrTokenMissing.Message, nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(role, resource, action)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, apperror.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
