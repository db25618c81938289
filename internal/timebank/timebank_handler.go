package timebank

import (
	"fmt"
	"net/http"

	"go-ponto/internal/shared/apperror"
	"go-ponto/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

type monthQuery struct {
	Month string `form:"month" binding:"required"`
}

func (h *Handler) GetMyReport(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if employeeID == "" {
		employeeID = c.GetString("user_id_validated")
	}
	h.respondReport(c, employeeID)
}

func (h *Handler) GetEmployeeReport(c *gin.Context) {
	h.respondReport(c, c.Param("employeeID"))
}

func (h *Handler) respondReport(c *gin.Context, employeeID string) {
	var q monthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	report, err := h.service.GetMonthReport(c.Request.Context(), employeeID, q.Month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report, nil)
}

// DownloadReportPDF streams the statement as an attachment.
func (h *Handler) DownloadReportPDF(c *gin.Context) {
	employeeID := c.Param("employeeID")
	if employeeID == "" {
		employeeID = c.GetString("employee_id")
	}
	if employeeID == "" {
		employeeID = c.GetString("user_id_validated")
	}

	var q monthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	pdfBytes, err := h.service.RenderMonthReportPDF(c.Request.Context(), employeeID, q.Month)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("banco-de-horas-%s.pdf", q.Month)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
