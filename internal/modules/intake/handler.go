package intake

import (
	"errors"
	"net/http"

	"meetspace/internal/modules/booking"
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
	rg.POST("/reservations", h.Submit)
}

func (h *Handler) Submit(c *gin.Context) {
	var req IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	b, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, IntakeResponse{
		BookingID:   b.ID,
		ClientID:    b.ClientID,
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),
	})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidRange):
		response.Error(c, http.StatusBadRequest, "INVALID_RANGE", err.Error())
	case errors.Is(err, booking.ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", err.Error())
	case errors.Is(err, booking.ErrRoomInactive):
		response.Error(c, http.StatusUnprocessableEntity, "ROOM_INACTIVE", err.Error())
	case errors.Is(err, booking.ErrConflict):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
