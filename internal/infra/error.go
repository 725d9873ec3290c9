package infra

import (
	"errors"
	"log/slog"

	"timewise/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs at error level except for kinds callers are expected to
// handle (missing or already existing containers), which log at debug.
func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("cause", err.Error()))
	}

	switch kind {
	case KindNotFound, KindAlreadyExists:
		slogger.Debug("Repository error: "+msg, logArgs...)
	default:
		slogger.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	// container (table, sheet tab) does not exist
	KindNotFound RepositoryErrorKind = "NOT_FOUND"
	// container creation lost a race or was already done
	KindAlreadyExists RepositoryErrorKind = "ALREADY_EXISTS"
	// credentials or permissions rejected by the backend
	KindAccessDenied RepositoryErrorKind = "ACCESS_DENIED"
	// backend unreachable, timed out or answered with an unexpected failure
	KindUnavailable RepositoryErrorKind = "UNAVAILABLE"
	// stored data has a layout the adapter cannot read
	KindMalformed RepositoryErrorKind = "MALFORMED"
)
