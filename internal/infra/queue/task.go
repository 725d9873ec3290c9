package queue

import (
	"encoding/json"
	"time"

	"timewise/internal/domain/availability"
	"timewise/internal/domain/booking"
	"timewise/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeBookingConfirm = "booking:confirm"

type confirmationPayload struct {
	BookingID uuid.UUID `json:"booking_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	WhatsApp  string    `json:"whatsapp"`
	Date      string    `json:"date"`
	TimeSlot  string    `json:"time_slot"`
	CreatedAt time.Time `json:"created_at"`
}

func NewConfirmationTask(b *booking.Booking) (*asynq.Task, error) {
	payload, err := json.Marshal(confirmationPayload{
		BookingID: b.ID(),
		Name:      b.Name().String(),
		Email:     b.Email().String(),
		Phone:     b.Phone().String(),
		WhatsApp:  b.WhatsApp().String(),
		Date:      b.Day().String(),
		TimeSlot:  b.TimeSlot(),
		CreatedAt: b.CreatedAt(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode confirmation payload")
	}
	return asynq.NewTask(TypeBookingConfirm, payload), nil
}

// ParseConfirmationTask rebuilds the booking; it is validated again.
func ParseConfirmationTask(t *asynq.Task) (*booking.Booking, error) {
	var p confirmationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return nil, errs.Wrap(err, "invalid confirmation payload")
	}
	day, err := availability.ParseDay(p.Date)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(p.BookingID, p.Name, p.Email, p.Phone, p.WhatsApp, day, p.TimeSlot, p.CreatedAt)
}
