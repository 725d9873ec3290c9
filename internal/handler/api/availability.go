package api

import (
	"net/http"
	"time"

	"timewise/internal/domain/availability"
	reqdto "timewise/internal/handler/dto/request"
	resdto "timewise/internal/handler/dto/response"
	"timewise/internal/handler/httperr"
	"timewise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	policies queries.PolicyQueries
	q        queries.AvailabilityQueries
}

func NewAvailabilityHandler(policies queries.PolicyQueries, q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{policies: policies, q: q}
}

// @Summary Remaining capacity per day of a month
// @Description Days that cannot be booked are absent. Full days are present with 0.
// @Tags availability
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} resdto.MonthAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) Month(c *gin.Context) {
	var query reqdto.MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "year and month are required", nil)
		return
	}

	ctx := c.Request.Context()
	policy, err := h.policies.GetCurrentPolicy(ctx)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	remaining, err := h.q.GetAvailableSlotsForMonth(ctx, query.Year, time.Month(query.Month), policy)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMonthAvailability(query.Year, query.Month, remaining))
}

// @Summary Time slots with room left on a day
// @Tags availability
// @Produce json
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /availability/{date}/slots [get]
func (h *AvailabilityHandler) Day(c *gin.Context) {
	day, err := availability.ParseDay(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	ctx := c.Request.Context()
	policy, err := h.policies.GetCurrentPolicy(ctx)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	slots, err := h.q.GetBookableTimeSlotsForDay(ctx, day, policy)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	bookable := availability.IsDayBookable(day, policy, availability.ProgramStartDate)
	c.JSON(http.StatusOK, resdto.FromDayAvailability(day, bookable, slots))
}
