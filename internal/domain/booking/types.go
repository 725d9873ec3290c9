package booking

import "errors"

var (
	ErrNameTooShort    = errors.New("name must be at least 2 characters")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidPhone    = errors.New("phone number must have at least 10 characters and contain only digits, spaces, +, - or parentheses")
	ErrInvalidTimeSlot = errors.New("time slot is not one of the offered hours")
)

// Column headers of the stored booking rows. Readers look columns up by
// these names, so their order in storage does not matter.
const (
	HeaderTimestamp = "Timestamp"
	HeaderName      = "Name"
	HeaderEmail     = "Email"
	HeaderPhone     = "Phone Number"
	HeaderWhatsApp  = "WhatsApp Number"
	HeaderDate      = "Booking Date"
	HeaderTime      = "Booking Time"
)

// Headers is the column order used when a booking container is created.
var Headers = []string{
	HeaderTimestamp, HeaderName, HeaderEmail, HeaderPhone, HeaderWhatsApp, HeaderDate, HeaderTime,
}

const TimestampLayout = "2006-01-02 15:04:05"
