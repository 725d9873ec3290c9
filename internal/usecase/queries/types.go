package queries

import (
	"timewise/internal/usecase/shared"
)

var (
	ErrStorageUnavailable  = shared.ErrStorageUnavailable
	ErrStorageAccessDenied = shared.ErrStorageAccessDenied
)

// SlotAvailability is one bookable time slot of a day.
type SlotAvailability struct {
	Slot      string
	Remaining int
}

// ExportFile is a rendered download.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}
