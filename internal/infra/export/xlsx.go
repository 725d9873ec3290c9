package export

import (
	"bytes"

	"timewise/internal/domain/booking"
	"timewise/internal/pkg/errs"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// XLSXExporter writes ledger rows into a workbook with the same header row
// the bookings tab uses.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXExporter) Extension() string { return "xlsx" }

// Render names the worksheet after title; excelize rejects names over 31 characters.
func (XLSXExporter) Render(title string, records []booking.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, title); err != nil {
		return nil, errs.Wrap(err, "invalid worksheet name")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create header style")
	}

	if err := f.SetSheetRow(title, "A1", &booking.Headers); err != nil {
		return nil, errs.Wrap(err, "failed to write header row")
	}
	lastCol, _ := excelize.ColumnNumberToName(len(booking.Headers))
	if err := f.SetCellStyle(title, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, errs.Wrap(err, "failed to style header row")
	}
	if err := f.SetColWidth(title, "A", lastCol, 20); err != nil {
		return nil, errs.Wrap(err, "failed to set column width")
	}

	for i, r := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := r.Row()
		if err := f.SetSheetRow(title, cell, &row); err != nil {
			return nil, errs.Wrapf(err, "failed to write row %d", i+2)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errs.Wrap(err, "failed to write workbook")
	}
	return buf.Bytes(), nil
}
