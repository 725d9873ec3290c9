package booking

import (
	"strings"

	"timewise/internal/domain/availability"
)

// Record is a booking row as read back from the ledger. Values are raw
// strings; nothing guarantees they parse.
type Record struct {
	availability.BookingRecord
	Timestamp string
	Name      string
	Email     string
	Phone     string
	WhatsApp  string
}

// Row returns the values in Headers order.
func (r Record) Row() []string {
	return []string{r.Timestamp, r.Name, r.Email, r.Phone, r.WhatsApp, r.Date, r.TimeSlot}
}

// RecordFromRow maps a stored row onto a Record using the header row.
// Cells missing at the end of a short row read as empty.
func RecordFromRow(index map[string]int, row []string) Record {
	cell := func(header string) string {
		i, ok := index[header]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}
	return Record{
		BookingRecord: availability.BookingRecord{
			Date:     cell(HeaderDate),
			TimeSlot: cell(HeaderTime),
		},
		Timestamp: cell(HeaderTimestamp),
		Name:      cell(HeaderName),
		Email:     cell(HeaderEmail),
		Phone:     cell(HeaderPhone),
		WhatsApp:  cell(HeaderWhatsApp),
	}
}

// HeaderIndex maps header names to column positions and reports whether the
// columns capacity accounting needs are present.
func HeaderIndex(headers []string) (map[string]int, bool) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if _, seen := index[h]; !seen {
			index[h] = i
		}
	}
	_, hasDate := index[HeaderDate]
	_, hasTime := index[HeaderTime]
	return index, hasDate && hasTime
}

func CapacityRecords(records []Record) []availability.BookingRecord {
	out := make([]availability.BookingRecord, len(records))
	for i, r := range records {
		out[i] = r.BookingRecord
	}
	return out
}
