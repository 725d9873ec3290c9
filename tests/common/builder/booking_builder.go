//go:build unit || e2e

package builder

import (
	"time"

	"timewise/internal/domain/availability"
	"timewise/internal/domain/booking"
	reqdto "timewise/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	WhatsApp  string
	Date      string
	TimeSlot  string
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        uuid.New(),
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "+1 (555) 010-2030",
		WhatsApp:  "+1 555 010 2030",
		Date:      "2025-07-01",
		TimeSlot:  "10:00",
		CreatedAt: time.Date(2025, time.June, 20, 8, 30, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithName(name string) *BookingBuilder {
	b.Name = name
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithPhone(phone string) *BookingBuilder {
	b.Phone = phone
	return b
}

func (b *BookingBuilder) WithWhatsApp(whatsApp string) *BookingBuilder {
	b.WhatsApp = whatsApp
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTimeSlot(slot string) *BookingBuilder {
	b.TimeSlot = slot
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	day, err := availability.ParseDay(b.Date)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.ID, b.Name, b.Email, b.Phone, b.WhatsApp, day, b.TimeSlot, b.CreatedAt)
}

func (b *BookingBuilder) BuildRecord() booking.Record {
	return booking.Record{
		BookingRecord: availability.BookingRecord{Date: b.Date, TimeSlot: b.TimeSlot},
		Timestamp:     b.CreatedAt.Format(booking.TimestampLayout),
		Name:          b.Name,
		Email:         b.Email,
		Phone:         b.Phone,
		WhatsApp:      b.WhatsApp,
	}
}

// BuildRecords returns n copies of the record, for filling a slot.
func (b *BookingBuilder) BuildRecords(n int) []booking.Record {
	out := make([]booking.Record, n)
	for i := range out {
		out[i] = b.BuildRecord()
	}
	return out
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Name:     b.Name,
		Email:    b.Email,
		Phone:    b.Phone,
		WhatsApp: b.WhatsApp,
		Date:     b.Date,
		Time:     b.TimeSlot,
	}
}
