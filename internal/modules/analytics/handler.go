package analytics

import (
	"net/http"
	"time"

	"meetspace/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics/revenue", h.Revenue)
}

// Revenue answers GET /analytics/revenue?period=month|year.
func (h *Handler) Revenue(c *gin.Context) {
	period := Period(c.DefaultQuery("period", string(PeriodMonth)))

	summary, err := h.service.Aggregate(c.Request.Context(), period, time.Now())
	if err != nil {
		if err == ErrInvalidPeriod {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "period must be month or year")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to aggregate revenue")
		return
	}

	response.Success(c, http.StatusOK, summary)
}
