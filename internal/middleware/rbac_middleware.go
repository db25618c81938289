package middleware

import (
	"net/http"

	"go-ponto/internal/rbac"
	"go-ponto/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is a local interface so the middleware accepts anything
// with an Enforce method.
type RBACService interface {
	Enforce(req rbac.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(rbac.EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource", gin.H{
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
