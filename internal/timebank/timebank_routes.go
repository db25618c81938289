package timebank

import (
	"go-ponto/internal/middleware"
	"go-ponto/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	timebank := r.Group("/timebank")
	timebank.Use(middleware.AuthMiddleware())
	{
		timebank.GET("/me", middleware.RBACAuthorize(rbacService, "timebank", "read"), h.GetMyReport)
		timebank.GET("/me/pdf", middleware.RBACAuthorize(rbacService, "timebank", "read"), h.DownloadReportPDF)
		timebank.GET("/employee/:employeeID", middleware.RBACAuthorize(rbacService, "timebank", "read_all"), h.GetEmployeeReport)
		timebank.GET("/employee/:employeeID/pdf", middleware.RBACAuthorize(rbacService, "timebank", "read_all"), h.DownloadReportPDF)
	}
}
