//go:build unit || e2e

package fake

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"timewise/internal/domain/availability"
	"timewise/internal/infra"
)

var discard = slog.New(slog.DiscardHandler)

// SettingsStore is an in-memory settings container. A nil row map means the
// container does not exist yet.
type SettingsStore struct {
	mu   sync.Mutex
	rows availability.Fields

	// Fail* force the next calls of that operation to fail with the kind.
	FailRead   infra.RepositoryErrorKind
	FailWrite  infra.RepositoryErrorKind
	FailCreate infra.RepositoryErrorKind

	Reads   int
	Writes  []availability.Fields
	Creates int
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{}
}

// NewSettingsStoreWith returns a store whose container exists and holds rows.
func NewSettingsStoreWith(rows availability.Fields) *SettingsStore {
	s := &SettingsStore{rows: availability.Fields{}}
	maps.Copy(s.rows, rows)
	return s
}

func (s *SettingsStore) ReadFields(_ context.Context) (availability.Fields, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Reads++
	if s.FailRead != "" {
		return nil, infra.WrapRepoErr(discard, s.FailRead, "forced read failure", nil)
	}
	if s.rows == nil {
		return nil, infra.WrapRepoErr(discard, infra.KindNotFound, "settings container missing", nil)
	}
	return maps.Clone(s.rows), nil
}

func (s *SettingsStore) WriteFields(_ context.Context, fields availability.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrite != "" {
		return infra.WrapRepoErr(discard, s.FailWrite, "forced write failure", nil)
	}
	if s.rows == nil {
		return infra.WrapRepoErr(discard, infra.KindNotFound, "settings container missing", nil)
	}
	maps.Copy(s.rows, fields)
	s.Writes = append(s.Writes, maps.Clone(fields))
	return nil
}

func (s *SettingsStore) CreateContainer(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Creates++
	if s.FailCreate != "" {
		return infra.WrapRepoErr(discard, s.FailCreate, "forced create failure", nil)
	}
	if s.rows != nil {
		return infra.WrapRepoErr(discard, infra.KindAlreadyExists, "settings container exists", nil)
	}
	s.rows = availability.Fields{}
	return nil
}

// Rows returns a copy of the stored rows, or nil when no container exists.
func (s *SettingsStore) Rows() availability.Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rows == nil {
		return nil
	}
	return maps.Clone(s.rows)
}
