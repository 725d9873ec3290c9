package availability

import "errors"

var (
	ErrInvalidDate           = errors.New("invalid date, expected yyyy-MM-dd")
	ErrInvalidMonth          = errors.New("month must be between 1 and 12")
	ErrInvalidWeekday        = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrDuplicateWeekday      = errors.New("duplicate weekday")
	ErrDuplicateDisabledDate = errors.New("duplicate disabled date")
	ErrUnknownTimeSlot       = errors.New("time slot is not one of the offered hours")
	ErrDuplicateTimeSlot     = errors.New("duplicate time slot")
)
