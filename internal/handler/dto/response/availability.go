package response

import (
	"timewise/internal/domain/availability"
	"timewise/internal/usecase/queries"
)

// MonthAvailabilityResponse only lists offered days. A day with 0 remaining
// is offered but full; a missing day is not offered at all.
type MonthAvailabilityResponse struct {
	Year      int            `json:"year"`
	Month     int            `json:"month"`
	Remaining map[string]int `json:"remaining"`
}

func FromMonthAvailability(year, month int, remaining map[availability.Day]int) *MonthAvailabilityResponse {
	res := &MonthAvailabilityResponse{
		Year:      year,
		Month:     month,
		Remaining: make(map[string]int, len(remaining)),
	}
	for d, n := range remaining {
		res.Remaining[d.String()] = n
	}
	return res
}

type SlotAvailabilityResponse struct {
	Time      string `json:"time"`
	Remaining int    `json:"remaining"`
}

// DayAvailabilityResponse lists slots with room left. Bookable is false when
// the day itself is closed, whatever the slots say.
type DayAvailabilityResponse struct {
	Date     string                      `json:"date"`
	Bookable bool                        `json:"bookable"`
	Slots    []*SlotAvailabilityResponse `json:"slots"`
}

func FromDayAvailability(day availability.Day, bookable bool, slots []queries.SlotAvailability) *DayAvailabilityResponse {
	res := &DayAvailabilityResponse{
		Date:     day.String(),
		Bookable: bookable,
		Slots:    make([]*SlotAvailabilityResponse, len(slots)),
	}
	for i, s := range slots {
		res.Slots[i] = &SlotAvailabilityResponse{Time: s.Slot, Remaining: s.Remaining}
	}
	return res
}
