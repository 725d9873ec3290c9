package response

import (
	"timewise/internal/usecase/commands"
)

type BookingResponse struct {
	ID                  string `json:"id"`
	Date                string `json:"date"`
	Time                string `json:"time"`
	ConfirmationQueued  bool   `json:"confirmationQueued"`
	RemainingInTimeSlot int    `json:"remainingInTimeSlot"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *BookingResponse {
	return &BookingResponse{
		ID:                  r.BookingID.String(),
		Date:                r.Day.String(),
		Time:                r.TimeSlot,
		ConfirmationQueued:  r.ConfirmationQueued,
		RemainingInTimeSlot: r.RemainingInTimeSlot,
	}
}
