package timeclock

import (
	"go-ponto/internal/middleware"
	"go-ponto/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	punches := r.Group("/punches")
	punches.Use(middleware.AuthMiddleware())
	{
		punches.POST("", middleware.RBACAuthorize(rbacService, "timeclock", "create"), h.Punch)
		punches.GET("/me", middleware.RBACAuthorize(rbacService, "timeclock", "read"), h.GetMyMonth)
		punches.GET("/employee/:employeeID", middleware.RBACAuthorize(rbacService, "timeclock", "read_all"), h.GetEmployeeMonth)
	}
}
