//go:build unit || e2e

package fake

import (
	"context"
	"sync"

	"timewise/internal/domain/availability"
	"timewise/internal/domain/booking"
	"timewise/internal/infra"
)

// BookingLedger keeps records in insertion order. Range filtering mirrors the
// spreadsheet adapter: rows whose date does not parse are always returned.
type BookingLedger struct {
	mu      sync.Mutex
	records []booking.Record

	FailFetch  infra.RepositoryErrorKind
	FailAppend infra.RepositoryErrorKind
}

func NewBookingLedger(records ...booking.Record) *BookingLedger {
	return &BookingLedger{records: append([]booking.Record(nil), records...)}
}

func (l *BookingLedger) FetchRecordsForRange(_ context.Context, from, to availability.Day) ([]booking.Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.FailFetch != "" {
		return nil, infra.WrapRepoErr(discard, l.FailFetch, "forced fetch failure", nil)
	}

	var out []booking.Record
	for _, r := range l.records {
		d, err := availability.ParseRecordDay(r.Date)
		if err != nil || (!d.Before(from) && !d.After(to)) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (l *BookingLedger) Append(_ context.Context, b *booking.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.FailAppend != "" {
		return infra.WrapRepoErr(discard, l.FailAppend, "forced append failure", nil)
	}
	l.records = append(l.records, b.Record())
	return nil
}

func (l *BookingLedger) Records() []booking.Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]booking.Record(nil), l.records...)
}
