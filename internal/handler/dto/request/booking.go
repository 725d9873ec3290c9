package request

import (
	"time"

	"timewise/internal/domain/availability"
	"timewise/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=10"`
	WhatsApp string `json:"whatsapp" binding:"required,min=10"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
}

func (r *CreateBookingRequest) ToDomain(now time.Time) (*booking.Booking, error) {
	day, err := availability.ParseDay(r.Date)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(uuid.Nil, r.Name, r.Email, r.Phone, r.WhatsApp, day, r.Time, now)
}
