package payroll

import (
	"go-ponto/internal/middleware"
	"go-ponto/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb *redis.Client) {
	payrolls := r.Group("/payroll")
	payrolls.Use(middleware.AuthMiddleware())
	{
		payrolls.POST("/closings",
			middleware.RBACAuthorize(rbacService, "payroll", "create"),
			middleware.Idempotency(rdb),
			h.RunClosing,
		)
		payrolls.POST("/closings/approve",
			middleware.RBACAuthorize(rbacService, "payroll", "approve"),
			middleware.Idempotency(rdb),
			h.Approve,
		)
		payrolls.GET("/closings", middleware.RBACAuthorize(rbacService, "payroll", "read_all"), h.GetClosing)
		payrolls.GET("/closings/export", middleware.RBACAuthorize(rbacService, "payroll", "read_all"), h.ExportXLSX)
		payrolls.GET("/closings/employee/:employeeID", middleware.RBACAuthorize(rbacService, "payroll", "read_all"), h.GetEmployeeClosing)
		payrolls.GET("/closings/employee/:employeeID/payslip", middleware.RBACAuthorize(rbacService, "payroll", "read_all"), h.DownloadPayslipPDF)
		payrolls.GET("/me/payslip", middleware.RBACAuthorize(rbacService, "payroll", "read"), h.DownloadPayslipPDF)
	}
}
