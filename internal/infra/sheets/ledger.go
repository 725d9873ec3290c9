package sheets

import (
	"context"
	"log/slog"

	"timewise/internal/domain/availability"
	"timewise/internal/domain/booking"
	"timewise/internal/infra"
)

// Ledger is the bookings tab. Columns are located by header name, so an
// operator may reorder them or add their own.
type Ledger struct {
	api           ValuesAPI
	spreadsheetID string
	sheet         string
	logger        *slog.Logger
}

func NewLedger(api ValuesAPI, spreadsheetID, sheet string, logger *slog.Logger) *Ledger {
	return &Ledger{
		api:           api,
		spreadsheetID: spreadsheetID,
		sheet:         sheet,
		logger:        logger,
	}
}

// FetchRecordsForRange reads the whole tab and filters in memory; the API has
// no server-side row filter for values ranges.
func (l *Ledger) FetchRecordsForRange(ctx context.Context, from, to availability.Day) ([]booking.Record, error) {
	rows, err := l.api.GetValues(ctx, l.spreadsheetID, a1(l.sheet, ""))
	if err != nil {
		// a missing tab is a misconfigured name, not an empty ledger; only Append creates it
		return nil, infra.WrapRepoErr(l.logger, classifyError(err), "failed to read bookings tab \""+l.sheet+"\"", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	index, ok := booking.HeaderIndex(rows[0])
	if !ok {
		return nil, infra.WrapRepoErr(l.logger, infra.KindMalformed,
			"bookings tab needs \""+booking.HeaderDate+"\" and \""+booking.HeaderTime+"\" columns", nil)
	}

	var records []booking.Record
	for _, row := range rows[1:] {
		rec := booking.RecordFromRow(index, row)
		day, err := availability.ParseRecordDay(rec.Date)
		if err != nil || (!day.Before(from) && !day.After(to)) {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (l *Ledger) Append(ctx context.Context, b *booking.Booking) error {
	if err := l.ensureHeader(ctx); err != nil {
		return err
	}
	row := b.Record().Row()
	if err := l.api.AppendValues(ctx, l.spreadsheetID, a1(l.sheet, ""), [][]string{row}); err != nil {
		return infra.WrapRepoErr(l.logger, classifyError(err), "failed to append booking", err)
	}
	return nil
}

// ensureHeader creates the tab and writes the header row when either is missing.
func (l *Ledger) ensureHeader(ctx context.Context) error {
	rows, err := l.api.GetValues(ctx, l.spreadsheetID, a1(l.sheet, "1:1"))
	if err == nil && len(rows) > 0 && len(rows[0]) > 0 {
		return nil
	}
	if err != nil {
		kind := classifyError(err)
		if kind != infra.KindNotFound {
			return infra.WrapRepoErr(l.logger, kind, "failed to read bookings header", err)
		}
		if err := l.api.AddSheet(ctx, l.spreadsheetID, l.sheet); err != nil {
			if kind := classifyError(err); kind != infra.KindAlreadyExists {
				return infra.WrapRepoErr(l.logger, kind, "failed to create bookings tab", err)
			}
		}
	}
	if err := l.api.UpdateValues(ctx, l.spreadsheetID, a1(l.sheet, "A1"), [][]string{booking.Headers}); err != nil {
		return infra.WrapRepoErr(l.logger, classifyError(err), "failed to write bookings header", err)
	}
	l.logger.Info("bookings header written", "sheet", l.sheet)
	return nil
}
