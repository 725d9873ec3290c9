package response

import (
	"timewise/internal/domain/availability"
)

type SettingsResponse struct {
	AvailableWeekdays  []int    `json:"availableWeekdays"`
	DisabledDates      []string `json:"disabledDates"`
	AvailableTimeSlots []string `json:"availableTimeSlots"`
}

func FromPolicy(p availability.Policy) *SettingsResponse {
	weekdays := p.Weekdays()
	res := &SettingsResponse{
		AvailableWeekdays:  make([]int, len(weekdays)),
		DisabledDates:      []string{},
		AvailableTimeSlots: p.TimeSlots(),
	}
	for i, w := range weekdays {
		res.AvailableWeekdays[i] = int(w)
	}
	for _, d := range p.DisabledDates() {
		res.DisabledDates = append(res.DisabledDates, d.String())
	}
	return res
}
