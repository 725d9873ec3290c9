package queries

import (
	"context"
	"fmt"
	"time"

	"timewise/internal/domain/availability"
	"timewise/internal/domain/booking"
	"timewise/internal/pkg/errs"
	"timewise/internal/usecase/shared"
)

// BookingExporter renders ledger rows into a downloadable document.
type BookingExporter interface {
	Render(title string, records []booking.Record) ([]byte, error)
	ContentType() string
	Extension() string
}

type ExportQueries interface {
	ExportMonth(ctx context.Context, year int, month time.Month) (*ExportFile, error)
}

type exportQueriesImpl struct {
	ledger   shared.BookingLedger
	exporter BookingExporter
}

func NewExportQueries(ledger shared.BookingLedger, exporter BookingExporter) ExportQueries {
	return &exportQueriesImpl{
		ledger:   ledger,
		exporter: exporter,
	}
}

func (q *exportQueriesImpl) ExportMonth(ctx context.Context, year int, month time.Month) (*ExportFile, error) {
	first, last, err := availability.MonthBounds(year, month)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	records, err := q.ledger.FetchRecordsForRange(ctx, first, last)
	if err != nil {
		return nil, shared.MarkStorageError(err, "fetch bookings for export")
	}

	// the ledger also hands back rows it could not date; they do not belong to the month
	inMonth := make([]booking.Record, 0, len(records))
	for _, r := range records {
		d, parseErr := availability.ParseRecordDay(r.Date)
		if parseErr == nil && d.InMonth(year, month) {
			inMonth = append(inMonth, r)
		}
	}

	title := fmt.Sprintf("Bookings %04d-%02d", year, int(month))
	data, err := q.exporter.Render(title, inMonth)
	if err != nil {
		return nil, errs.Wrap(err, "render export")
	}

	return &ExportFile{
		Name:        fmt.Sprintf("bookings-%04d-%02d.%s", year, int(month), q.exporter.Extension()),
		ContentType: q.exporter.ContentType(),
		Data:        data,
	}, nil
}
