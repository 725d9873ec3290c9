package api

import (
	"net/http"

	reqdto "timewise/internal/handler/dto/request"
	resdto "timewise/internal/handler/dto/response"
	"timewise/internal/handler/httperr"
	"timewise/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Book a time slot
// @Description Stores the booking and queues the confirmation mail
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateBooking(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}
