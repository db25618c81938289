package justification

import (
	"go-ponto/internal/middleware"
	"go-ponto/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	justifications := r.Group("/justifications")
	justifications.Use(middleware.AuthMiddleware())
	{
		justifications.POST("", middleware.RBACAuthorize(rbacService, "justification", "create"), h.Submit)
		justifications.GET("/me", middleware.RBACAuthorize(rbacService, "justification", "read"), h.GetMine)

		justifications.GET("", middleware.RBACAuthorize(rbacService, "justification", "read_all"), h.GetAll)
		justifications.POST("/admin", middleware.RBACAuthorize(rbacService, "justification", "approve"), h.CreateApproved)
		justifications.PATCH("/:id/approve", middleware.RBACAuthorize(rbacService, "justification", "approve"), h.Approve)
		justifications.PATCH("/:id/reject", middleware.RBACAuthorize(rbacService, "justification", "approve"), h.Reject)
	}
}
