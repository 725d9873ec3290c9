package request

import (
	"time"

	"timewise/internal/domain/availability"
)

type UpdateSettingsRequest struct {
	AvailableWeekdays  []int    `json:"availableWeekdays" binding:"required"`
	DisabledDates      []string `json:"disabledDates" binding:"required"`
	AvailableTimeSlots []string `json:"availableTimeSlots" binding:"required"`
}

func (r *UpdateSettingsRequest) ToDomain() (availability.Policy, error) {
	weekdays := make([]time.Weekday, len(r.AvailableWeekdays))
	for i, w := range r.AvailableWeekdays {
		weekdays[i] = time.Weekday(w)
	}
	days := make([]availability.Day, 0, len(r.DisabledDates))
	for _, s := range r.DisabledDates {
		d, err := availability.ParseDay(s)
		if err != nil {
			return availability.Policy{}, err
		}
		days = append(days, d)
	}
	return availability.NewPolicy(weekdays, days, r.AvailableTimeSlots)
}
