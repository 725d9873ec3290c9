package commands

import (
	"time"

	"timewise/internal/domain/availability"
	"timewise/internal/pkg/errs"
	"timewise/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidBooking = errs.New("invalid booking request")
	ErrDayInPast      = errs.New("booking date is in the past")
	ErrDayNotBookable = errs.New("day is not open for bookings")
	ErrSlotNotOffered = errs.New("time slot is not offered")
	ErrSlotFull       = errs.New("time slot is full")

	ErrInvalidPolicy  = errs.New("invalid policy")
	ErrEmptyWeekdays  = errs.New("at least one weekday must be available")
	ErrEmptyTimeSlots = errs.New("at least one time slot must be available")

	ErrStorageUnavailable  = shared.ErrStorageUnavailable
	ErrStorageAccessDenied = shared.ErrStorageAccessDenied
)

type CreateBookingResult struct {
	BookingID           uuid.UUID
	Day                 availability.Day
	TimeSlot            string
	ConfirmationQueued  bool
	RemainingInTimeSlot int
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}
