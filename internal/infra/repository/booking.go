package repository

import (
	"context"
	"log/slog"

	"timewise/internal/domain/availability"
	"timewise/internal/domain/booking"
	"timewise/internal/infra"
	"timewise/internal/infra/db"
	"timewise/internal/infra/pgquery"
	"timewise/internal/pkg/pgconv"
)

type BookingQueries interface {
	InsertBooking(ctx context.Context, dbtx db.DBTX, arg pgquery.InsertBookingParams) error
	ListBookingsBetween(ctx context.Context, dbtx db.DBTX, arg pgquery.ListBookingsBetweenParams) ([]pgquery.Booking, error)
}

// BookingRepository is the Postgres booking ledger. Rows are typed columns,
// so every record it returns parses.
type BookingRepository struct {
	queries BookingQueries
	db      db.DBTX
	logger  *slog.Logger
}

func NewBookingRepository(queries BookingQueries, dbtx db.DBTX, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      dbtx,
		logger:  logger,
	}
}

func (r *BookingRepository) FetchRecordsForRange(ctx context.Context, from, to availability.Day) ([]booking.Record, error) {
	rows, err := r.queries.ListBookingsBetween(ctx, r.db, pgquery.ListBookingsBetweenParams{
		FromDate: pgconv.DateToPgtype(from.Time()),
		ToDate:   pgconv.DateToPgtype(to.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, classifyPgError(err), "failed to list bookings", err)
	}

	records := make([]booking.Record, len(rows))
	for i, row := range rows {
		records[i] = toRecord(row)
	}
	return records, nil
}

func (r *BookingRepository) Append(ctx context.Context, b *booking.Booking) error {
	params := pgquery.InsertBookingParams{
		ID:          pgconv.UUIDToPgtype(b.ID()),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
		Name:        b.Name().String(),
		Email:       b.Email().String(),
		Phone:       b.Phone().String(),
		Whatsapp:    pgconv.StringToPgtype(b.WhatsApp().String()),
		BookingDate: pgconv.DateToPgtype(b.Day().Time()),
		BookingTime: b.TimeSlot(),
	}
	if err := r.queries.InsertBooking(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr(r.logger, classifyPgError(err), "failed to append booking", err)
	}
	return nil
}

func toRecord(row pgquery.Booking) booking.Record {
	return booking.Record{
		BookingRecord: availability.BookingRecord{
			Date:     pgconv.DateStringFromPgtype(row.BookingDate),
			TimeSlot: row.BookingTime,
		},
		Timestamp: pgconv.TimeFromPgtype(row.CreatedAt).UTC().Format(booking.TimestampLayout),
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		WhatsApp:  pgconv.StringFromPgtype(row.Whatsapp),
	}
}
