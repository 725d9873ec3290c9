package queries

import (
	"context"
	"log/slog"
	"time"

	"timewise/internal/domain/availability"
	"timewise/internal/domain/booking"
	"timewise/internal/pkg/errs"
	"timewise/internal/usecase/shared"
)

type AvailabilityQueries interface {
	// GetAvailableSlotsForMonth maps every bookable day of the month to its
	// remaining capacity. Days that are not bookable are absent; full days
	// are present with 0.
	GetAvailableSlotsForMonth(ctx context.Context, year int, month time.Month, policy availability.Policy) (map[availability.Day]int, error)
	// GetBookableTimeSlotsForDay lists the slots of day that still have room,
	// in policy order.
	GetBookableTimeSlotsForDay(ctx context.Context, day availability.Day, policy availability.Policy) ([]SlotAvailability, error)
}

type availabilityQueriesImpl struct {
	ledger       shared.BookingLedger
	programStart availability.Day
	logger       *slog.Logger
}

func NewAvailabilityQueries(ledger shared.BookingLedger, logger *slog.Logger) AvailabilityQueries {
	return &availabilityQueriesImpl{
		ledger:       ledger,
		programStart: availability.ProgramStartDate,
		logger:       logger,
	}
}

func (q *availabilityQueriesImpl) GetAvailableSlotsForMonth(ctx context.Context, year int, month time.Month, policy availability.Policy) (map[availability.Day]int, error) {
	first, last, err := availability.MonthBounds(year, month)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	result := make(map[availability.Day]int)
	if last.Before(q.programStart) {
		return result, nil
	}

	records, err := q.ledger.FetchRecordsForRange(ctx, first, last)
	if err != nil {
		return nil, shared.MarkStorageError(err, "fetch bookings for month")
	}

	counts, skipped := availability.CountByDay(booking.CapacityRecords(records), year, month)
	q.logSkipped(skipped)

	for d := first; !d.After(last); d = d.AddDays(1) {
		if !availability.IsDayBookable(d, policy, q.programStart) {
			continue
		}
		result[d] = availability.RemainingForDay(policy, counts[d])
	}
	return result, nil
}

func (q *availabilityQueriesImpl) GetBookableTimeSlotsForDay(ctx context.Context, day availability.Day, policy availability.Policy) ([]SlotAvailability, error) {
	records, err := q.ledger.FetchRecordsForRange(ctx, day, day)
	if err != nil {
		return nil, shared.MarkStorageError(err, "fetch bookings for day")
	}

	counts, skipped := availability.CountByTimeSlot(booking.CapacityRecords(records), day)
	q.logSkipped(skipped)

	slots := make([]SlotAvailability, 0, len(policy.TimeSlots()))
	for _, slot := range policy.TimeSlots() {
		remaining := availability.RemainingForSlot(counts[slot])
		if remaining <= 0 {
			continue
		}
		slots = append(slots, SlotAvailability{Slot: slot, Remaining: remaining})
	}
	return slots, nil
}

func (q *availabilityQueriesImpl) logSkipped(skipped []availability.BookingRecord) {
	for _, r := range skipped {
		q.logger.Warn("skipping malformed booking record", "date", r.Date, "time", r.TimeSlot)
	}
}
