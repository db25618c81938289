package payslip

import (
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

func (h *Handler) ListMine(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if employeeID == "" {
		employeeID = c.GetString("user_id_validated")
	}

	resp, err := h.service.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadMine(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if employeeID == "" {
		employeeID = c.GetString("user_id_validated")
	}
	h.download(c, employeeID)
}

func (h *Handler) DownloadForEmployee(c *gin.Context) {
	h.download(c, c.Param("employeeID"))
}

func (h *Handler) download(c *gin.Context, employeeID string) {
	month := c.Query("month")
	if month == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", "month is required")
		return
	}

	data, filename, err := h.service.Download(c.Request.Context(), employeeID, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", data)
}
