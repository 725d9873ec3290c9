//go:build unit

package export_test

import (
	"bytes"
	"testing"

	"timewise/internal/domain/booking"
	"timewise/internal/infra/export"
	"timewise/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_Render(t *testing.T) {
	first := builder.NewBookingBuilder().BuildRecord()
	second := builder.NewBookingBuilder().WithName("John Roe").WithTimeSlot("11:00").BuildRecord()

	data, err := export.NewXLSXExporter().Render("Bookings 2025-07", []booking.Record{first, second})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Bookings 2025-07"}, f.GetSheetList())

	rows, err := f.GetRows("Bookings 2025-07")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, booking.Headers, rows[0])
	assert.Equal(t, first.Row(), rows[1])
	assert.Equal(t, "John Roe", rows[2][1])
	assert.Equal(t, "11:00", rows[2][6])
}

func TestXLSXExporter_EmptyMonth(t *testing.T) {
	data, err := export.NewXLSXExporter().Render("Bookings 2025-08", nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bookings 2025-08")
	require.NoError(t, err)
	assert.Equal(t, [][]string{booking.Headers}, rows)
}

func TestXLSXExporter_Metadata(t *testing.T) {
	e := export.NewXLSXExporter()
	assert.Equal(t, "xlsx", e.Extension())
	assert.Contains(t, e.ContentType(), "spreadsheetml")
}
