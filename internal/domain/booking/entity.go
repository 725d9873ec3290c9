package booking

import (
	"time"

	"timewise/internal/domain/availability"

	"github.com/google/uuid"
)

// Booking is a validated booking request about to be appended to the ledger.
type Booking struct {
	id        uuid.UUID
	name      Name
	email     Email
	phone     Phone
	whatsApp  Phone
	day       availability.Day
	timeSlot  string
	createdAt time.Time
}

func NewBooking(id uuid.UUID, name, email, phone, whatsApp string, day availability.Day, timeSlot string, now time.Time) (*Booking, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	p, err := NewPhone(phone)
	if err != nil {
		return nil, err
	}
	w, err := NewPhone(whatsApp)
	if err != nil {
		return nil, err
	}
	if day.IsZero() {
		return nil, availability.ErrInvalidDate
	}
	if !availability.IsMasterTimeSlot(timeSlot) {
		return nil, ErrInvalidTimeSlot
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Booking{
		id:        id,
		name:      n,
		email:     e,
		phone:     p,
		whatsApp:  w,
		day:       day,
		timeSlot:  timeSlot,
		createdAt: now,
	}, nil
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) Name() Name            { return b.name }
func (b *Booking) Email() Email          { return b.email }
func (b *Booking) Phone() Phone          { return b.phone }
func (b *Booking) WhatsApp() Phone       { return b.whatsApp }
func (b *Booking) Day() availability.Day { return b.day }
func (b *Booking) TimeSlot() string      { return b.timeSlot }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }

// StartsAt is the slot start in loc.
func (b *Booking) StartsAt(loc *time.Location) time.Time {
	t, err := time.ParseInLocation("15:04", b.timeSlot, loc)
	if err != nil {
		return time.Date(b.day.Year(), b.day.Month(), b.day.DayOfMonth(), 0, 0, 0, 0, loc)
	}
	return time.Date(b.day.Year(), b.day.Month(), b.day.DayOfMonth(), t.Hour(), t.Minute(), 0, 0, loc)
}

// Record renders the booking the way it is stored.
func (b *Booking) Record() Record {
	return Record{
		BookingRecord: availability.BookingRecord{
			Date:     b.day.String(),
			TimeSlot: b.timeSlot,
		},
		Timestamp: b.createdAt.UTC().Format(TimestampLayout),
		Name:      b.name.String(),
		Email:     b.email.String(),
		Phone:     b.phone.String(),
		WhatsApp:  b.whatsApp.String(),
	}
}
