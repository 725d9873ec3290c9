//go:build unit

package sheets_test

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"google.golang.org/api/googleapi"
)

// spreadsheet is an in-memory stand-in for one spreadsheet. It understands
// just the range shapes the adapters send.
type spreadsheet struct {
	mu   sync.Mutex
	tabs map[string][][]string

	// fail every call with this error when set
	err   error
	calls []string
}

func newSpreadsheet(tabs map[string][][]string) *spreadsheet {
	if tabs == nil {
		tabs = map[string][][]string{}
	}
	return &spreadsheet{tabs: tabs}
}

func (s *spreadsheet) GetValues(_ context.Context, _ string, rng string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "get "+rng)
	if s.err != nil {
		return nil, s.err
	}

	tab, cells := splitRange(rng)
	rows, ok := s.tabs[tab]
	if !ok {
		return nil, unableToParse(rng)
	}
	switch cells {
	case "":
		return copyRows(rows), nil
	case "1:1":
		if len(rows) == 0 {
			return nil, nil
		}
		return copyRows(rows[:1]), nil
	case "A:B":
		out := copyRows(rows)
		for i, row := range out {
			if len(row) > 2 {
				out[i] = row[:2]
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported range %q", rng)
}

func (s *spreadsheet) UpdateValues(_ context.Context, _ string, rng string, values [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "update "+rng)
	if s.err != nil {
		return s.err
	}

	tab, cells := splitRange(rng)
	rows, ok := s.tabs[tab]
	if !ok {
		return unableToParse(rng)
	}
	start := strings.SplitN(cells, ":", 2)[0]
	col := int(start[0] - 'A')
	row, err := strconv.Atoi(start[1:])
	if err != nil {
		return err
	}
	for i, vals := range values {
		r := row - 1 + i
		for len(rows) <= r {
			rows = append(rows, nil)
		}
		for j, v := range vals {
			for len(rows[r]) <= col+j {
				rows[r] = append(rows[r], "")
			}
			rows[r][col+j] = v
		}
	}
	s.tabs[tab] = rows
	return nil
}

func (s *spreadsheet) AppendValues(_ context.Context, _ string, rng string, values [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "append "+rng)
	if s.err != nil {
		return s.err
	}

	tab, _ := splitRange(rng)
	if _, ok := s.tabs[tab]; !ok {
		return unableToParse(rng)
	}
	s.tabs[tab] = append(s.tabs[tab], copyRows(values)...)
	return nil
}

func (s *spreadsheet) AddSheet(_ context.Context, _ string, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "add "+title)
	if s.err != nil {
		return s.err
	}

	if _, ok := s.tabs[title]; ok {
		return &googleapi.Error{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Invalid requests[0].addSheet: A sheet with the name %q already exists. Please enter another name.", title),
		}
	}
	s.tabs[title] = nil
	return nil
}

func (s *spreadsheet) tab(name string) [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRows(s.tabs[name])
}

func splitRange(rng string) (string, string) {
	tab, cells, _ := strings.Cut(rng, "!")
	tab = strings.TrimSuffix(strings.TrimPrefix(tab, "'"), "'")
	return strings.ReplaceAll(tab, "''", "'"), cells
}

func unableToParse(rng string) error {
	return &googleapi.Error{Code: http.StatusBadRequest, Message: "Unable to parse range: " + rng}
}

func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
