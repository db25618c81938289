package payroll

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-ponto/internal/shared/apperror"
	"go-ponto/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// RunClosing computes the month's draft closing. Guarded by the
// idempotency middleware: a retried request with the same key replays the
// cached response instead of recomputing.
func (h *Handler) RunClosing(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")
	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req RunClosingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	resp, err := h.service.RunClosing(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, err := json.Marshal(resp); err == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetClosing(c *gin.Context) {
	resp, err := h.service.GetClosing(c.Request.Context(), c.Query("month"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	actorID := c.GetString("user_id_validated")

	var req ApproveClosingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	resp, err := h.service.Approve(c.Request.Context(), actorID, req.Month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetEmployeeClosing(c *gin.Context) {
	resp, err := h.service.GetEmployeeClosing(c.Request.Context(), c.Param("employeeID"), c.Query("month"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadPayslipPDF(c *gin.Context) {
	employeeID := c.Param("employeeID")
	if employeeID == "" {
		employeeID = c.GetString("employee_id")
	}
	if employeeID == "" {
		employeeID = c.GetString("user_id_validated")
	}
	month := c.Query("month")

	pdfBytes, err := h.service.RenderPayslipPDF(c.Request.Context(), employeeID, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("holerite-%s.pdf", month)))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *Handler) ExportXLSX(c *gin.Context) {
	month := c.Query("month")

	data, err := h.service.ExportClosingXLSX(c.Request.Context(), month)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("fechamento-%s.xlsx", month)))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
