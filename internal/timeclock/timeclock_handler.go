package timeclock

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

// Punch registers a clock event for the authenticated employee.
func (h *Handler) Punch(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if employeeID == "" {
		employeeID = c.GetString("user_id_validated")
	}

	var req CreatePunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	resp, err := h.service.RegisterPunch(c.Request.Context(), employeeID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

// GetMyMonth lists the authenticated employee's punches for one month.
func (h *Handler) GetMyMonth(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if employeeID == "" {
		employeeID = c.GetString("user_id_validated")
	}
	h.respondMonth(c, employeeID)
}

// GetEmployeeMonth lists any employee's punches for one month. Admin only,
// enforced at the route level.
func (h *Handler) GetEmployeeMonth(c *gin.Context) {
	h.respondMonth(c, c.Param("employeeID"))
}

func (h *Handler) respondMonth(c *gin.Context, employeeID string) {
	var q MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	resp, err := h.service.GetMonth(c.Request.Context(), employeeID, q.Month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
