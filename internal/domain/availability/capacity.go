package availability

import (
	"strings"
	"time"
)

// BookingRecord is the part of a stored booking that capacity accounting reads.
// Both fields are kept exactly as stored.
type BookingRecord struct {
	Date     string
	TimeSlot string
}

// CountByDay counts bookings per day of the given month. Records whose date
// cannot be parsed are returned in skipped and do not stop the count.
func CountByDay(records []BookingRecord, year int, month time.Month) (counts map[Day]int, skipped []BookingRecord) {
	counts = make(map[Day]int)
	for _, r := range records {
		d, err := ParseRecordDay(r.Date)
		if err != nil {
			skipped = append(skipped, r)
			continue
		}
		if d.InMonth(year, month) {
			counts[d]++
		}
	}
	return counts, skipped
}

// CountByTimeSlot counts bookings per time slot on day. Records for other days
// are ignored; unparsable dates and empty slots are returned in skipped.
func CountByTimeSlot(records []BookingRecord, day Day) (counts map[string]int, skipped []BookingRecord) {
	counts = make(map[string]int)
	for _, r := range records {
		d, err := ParseRecordDay(r.Date)
		if err != nil {
			skipped = append(skipped, r)
			continue
		}
		if d != day {
			continue
		}
		slot := strings.TrimSpace(r.TimeSlot)
		if slot == "" {
			skipped = append(skipped, r)
			continue
		}
		counts[slot]++
	}
	return counts, skipped
}

// RemainingForDay never goes below zero.
func RemainingForDay(policy Policy, booked int) int {
	return max(0, policy.DailyCapacity()-booked)
}

// RemainingForSlot can be zero or negative when a slot is overbooked; callers filter.
func RemainingForSlot(booked int) int {
	return SlotCapacity - booked
}
