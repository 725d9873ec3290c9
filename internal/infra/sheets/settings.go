package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"timewise/internal/domain/availability"
	"timewise/internal/infra"
)

var settingsHeader = []string{"Setting", "Value"}

// SettingsStore keeps the policy fields as key/value rows in one tab.
type SettingsStore struct {
	api           ValuesAPI
	spreadsheetID string
	sheet         string
	logger        *slog.Logger
}

func NewSettingsStore(api ValuesAPI, spreadsheetID, sheet string, logger *slog.Logger) *SettingsStore {
	return &SettingsStore{
		api:           api,
		spreadsheetID: spreadsheetID,
		sheet:         sheet,
		logger:        logger,
	}
}

func (s *SettingsStore) ReadFields(ctx context.Context) (availability.Fields, error) {
	rows, err := s.readRows(ctx)
	if err != nil {
		return nil, err
	}

	fields := make(availability.Fields)
	for _, row := range rows {
		key, value := settingRow(row)
		if key == "" {
			continue
		}
		if _, seen := fields[key]; !seen {
			fields[key] = value
		}
	}
	return fields, nil
}

// WriteFields updates the value cell of existing keys and appends the rest.
func (s *SettingsStore) WriteFields(ctx context.Context, fields availability.Fields) error {
	if len(fields) == 0 {
		return nil
	}

	rows, err := s.readRows(ctx)
	if err != nil {
		return err
	}
	rowOf := make(map[string]int, len(rows))
	for i, row := range rows {
		key, _ := settingRow(row)
		if _, seen := rowOf[key]; key != "" && !seen {
			rowOf[key] = i + 1 // A1 rows are 1-based
		}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var appended [][]string
	for _, k := range keys {
		n, ok := rowOf[k]
		if !ok {
			appended = append(appended, []string{k, fields[k]})
			continue
		}
		rng := a1(s.sheet, fmt.Sprintf("B%d", n))
		if err := s.api.UpdateValues(ctx, s.spreadsheetID, rng, [][]string{{fields[k]}}); err != nil {
			return infra.WrapRepoErr(s.logger, classifyError(err), "failed to update setting "+k, err)
		}
	}

	if len(appended) > 0 {
		if err := s.api.AppendValues(ctx, s.spreadsheetID, a1(s.sheet, "A:B"), appended); err != nil {
			return infra.WrapRepoErr(s.logger, classifyError(err), "failed to append settings", err)
		}
	}
	return nil
}

func (s *SettingsStore) CreateContainer(ctx context.Context) error {
	if err := s.api.AddSheet(ctx, s.spreadsheetID, s.sheet); err != nil {
		return infra.WrapRepoErr(s.logger, classifyError(err), "failed to create settings tab", err)
	}
	if err := s.api.UpdateValues(ctx, s.spreadsheetID, a1(s.sheet, "A1:B1"), [][]string{settingsHeader}); err != nil {
		return infra.WrapRepoErr(s.logger, classifyError(err), "failed to write settings header", err)
	}
	s.logger.Info("settings tab created", "sheet", s.sheet)
	return nil
}

func (s *SettingsStore) readRows(ctx context.Context) ([][]string, error) {
	rows, err := s.api.GetValues(ctx, s.spreadsheetID, a1(s.sheet, "A:B"))
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, classifyError(err), "failed to read settings tab", err)
	}
	return rows, nil
}

// settingRow returns an empty key for the header and blank rows.
func settingRow(row []string) (string, string) {
	if len(row) == 0 {
		return "", ""
	}
	key := strings.TrimSpace(row[0])
	if key == settingsHeader[0] {
		return "", ""
	}
	if len(row) < 2 {
		return key, ""
	}
	return key, row[1]
}
