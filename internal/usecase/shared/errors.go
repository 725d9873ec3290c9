package shared

import (
	"timewise/internal/infra"
	"timewise/internal/pkg/errs"
)

var (
	ErrStorageUnavailable  = errs.New("storage unavailable")
	ErrStorageAccessDenied = errs.New("storage access denied")
)

// MarkStorageError wraps a store error and marks it with the sentinel the
// handlers map to a status code. Access problems are a deployment fault; every
// other failure is reported as a temporary outage.
func MarkStorageError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindAccessDenied) {
		return errs.Mark(errs.Wrap(err, msg), ErrStorageAccessDenied)
	}
	return errs.Mark(errs.Wrap(err, msg), ErrStorageUnavailable)
}
