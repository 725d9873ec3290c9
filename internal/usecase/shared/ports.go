package shared

import (
	"context"

	"timewise/internal/domain/availability"
	"timewise/internal/domain/booking"
)

// SettingsStore persists policy fields as key/value rows in a container
// (table, sheet tab) fixed by the adapter's configuration.
//
// Errors carry an infra.RepositoryErrorKind:
//   - ReadFields: KindNotFound when the container does not exist, KindAccessDenied, KindUnavailable
//   - WriteFields: KindNotFound, KindAccessDenied, KindUnavailable
//   - CreateContainer: KindAlreadyExists, KindAccessDenied, KindUnavailable
type SettingsStore interface {
	// ReadFields returns only the keys that have a stored row.
	ReadFields(ctx context.Context) (availability.Fields, error)
	// WriteFields upserts the given keys and leaves the others untouched.
	WriteFields(ctx context.Context, fields availability.Fields) error
	// CreateContainer creates the empty container with its header.
	CreateContainer(ctx context.Context) error
}

// BookingLedger is the append-only store of submitted bookings.
type BookingLedger interface {
	// FetchRecordsForRange returns rows dated within [from, to]. Rows whose date
	// does not parse are returned too, so the caller can report them.
	FetchRecordsForRange(ctx context.Context, from, to availability.Day) ([]booking.Record, error)
	Append(ctx context.Context, b *booking.Booking) error
}

// ConfirmationQueue hands a stored booking over to asynchronous delivery of
// the confirmation mail and calendar entry.
type ConfirmationQueue interface {
	EnqueueConfirmation(ctx context.Context, b *booking.Booking) error
}
