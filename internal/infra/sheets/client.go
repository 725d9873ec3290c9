package sheets

import (
	"context"
	"fmt"
	"strings"

	"timewise/internal/infra/gauth"
	"timewise/internal/pkg/config"
	"timewise/internal/pkg/errs"

	gsheets "google.golang.org/api/sheets/v4"
)

// ValuesAPI is the part of the Sheets API the adapters use. Errors are
// returned as the API client produced them.
type ValuesAPI interface {
	GetValues(ctx context.Context, spreadsheetID, rng string) ([][]string, error)
	UpdateValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error
	AppendValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error
	AddSheet(ctx context.Context, spreadsheetID, title string) error
}

type serviceAPI struct {
	srv *gsheets.Service
}

func NewValuesAPI(ctx context.Context, cfg config.SheetsConfig) (ValuesAPI, error) {
	opts, err := gauth.ClientOptions(cfg, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, err
	}
	srv, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create sheets client")
	}
	return &serviceAPI{srv: srv}, nil
}

func (a *serviceAPI) GetValues(ctx context.Context, spreadsheetID, rng string) ([][]string, error) {
	resp, err := a.srv.Spreadsheets.Values.Get(spreadsheetID, rng).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = fmt.Sprint(cell)
		}
	}
	return rows, nil
}

func (a *serviceAPI) UpdateValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error {
	_, err := a.srv.Spreadsheets.Values.Update(spreadsheetID, rng, toValueRange(rows)).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

func (a *serviceAPI) AppendValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error {
	_, err := a.srv.Spreadsheets.Values.Append(spreadsheetID, rng, toValueRange(rows)).
		// RAW keeps dates and times as the canonical strings instead of locale formatted cells
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

func (a *serviceAPI) AddSheet(ctx context.Context, spreadsheetID, title string) error {
	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			AddSheet: &gsheets.AddSheetRequest{
				Properties: &gsheets.SheetProperties{Title: title},
			},
		}},
	}
	_, err := a.srv.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
	return err
}

func toValueRange(rows [][]string) *gsheets.ValueRange {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = make([]interface{}, len(row))
		for j, cell := range row {
			values[i][j] = cell
		}
	}
	return &gsheets.ValueRange{Values: values}
}

// a1 quotes the tab name so names with spaces or quotes form a valid range.
func a1(sheet, cells string) string {
	quoted := "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	if cells == "" {
		return quoted
	}
	return quoted + "!" + cells
}
