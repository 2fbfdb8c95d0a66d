package middleware

import (
	"fmt"
	"strings"

	"go-sales-report/internal/authz"
	"go-sales-report/internal/shared/apperror"
	"go-sales-report/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	KeySalesPersonID = "sales_person_id"
	KeyEmail         = "email"
	KeyName          = "name"
	KeyDepartment    = "department"
	KeyIsManager     = "is_manager"
	KeyRole          = "role"
)

// RequireAuth resolves the bearer token into the authenticated sales person.
// A missing token and an invalid/expired one are reported with distinct
// codes, both as 401.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			response.Error(c, apperror.ErrTokenMissing.HTTPStatus, apperror.ErrTokenMissing.Code, apperror.ErrTokenMissing.Message, nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, apperror.ErrTokenInvalid.HTTPStatus, apperror.ErrTokenInvalid.Code, apperror.ErrTokenInvalid.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, apperror.ErrTokenInvalid.HTTPStatus, apperror.ErrTokenInvalid.Code, apperror.ErrTokenInvalid.Message, nil)
			c.Abort()
			return
		}

		sub, ok := claims["sub"].(float64)
		if !ok || sub <= 0 {
			response.Error(c, apperror.ErrTokenInvalid.HTTPStatus, apperror.ErrTokenInvalid.Code, apperror.ErrTokenInvalid.Message, nil)
			c.Abort()
			return
		}

		email, _ := claims["email"].(string)
		name, _ := claims["name"].(string)
		department, _ := claims["department"].(string)
		isManager, _ := claims["is_manager"].(bool)

		c.Set(KeySalesPersonID, uint(sub))
		c.Set(KeyEmail, email)
		c.Set(KeyName, name)
		c.Set(KeyDepartment, department)
		c.Set(KeyIsManager, isManager)
		c.Set(KeyRole, authz.RoleFor(isManager))

		c.Next()
	}
}
