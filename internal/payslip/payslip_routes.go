package payslip

import (
	"go-ponto/internal/middleware"
	"go-ponto/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	{
		payslips.GET("/me", middleware.RBACAuthorize(rbacService, "payslip", "read"), h.ListMine)
		payslips.GET("/me/download", middleware.RBACAuthorize(rbacService, "payslip", "read"), h.DownloadMine)
		payslips.GET("/employee/:employeeID/download", middleware.RBACAuthorize(rbacService, "payslip", "read_all"), h.DownloadForEmployee)
	}
}
