package servicereport

import (
	"go-ponto/internal/middleware"
	"go-ponto/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	reports := r.Group("/service-reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.POST("", middleware.RBACAuthorize(rbacService, "servicereport", "create"), h.Create)
		reports.GET("/me", middleware.RBACAuthorize(rbacService, "servicereport", "read"), h.GetMine)
		reports.GET("", middleware.RBACAuthorize(rbacService, "servicereport", "read_all"), h.GetAll)
		reports.GET("/:id", middleware.RBACAuthorize(rbacService, "servicereport", "read_all"), h.GetByID)
		reports.DELETE("/:id", middleware.RBACAuthorize(rbacService, "servicereport", "delete"), h.Delete)
	}
}
