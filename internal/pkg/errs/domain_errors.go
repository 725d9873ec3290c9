package errs

import "errors"

// Sentinels shared across layers
var (
	// Startup errors: a required identifier or credential is missing or malformed.
	// The message is shown to the operator as-is.
	ErrConfiguration = errors.New("configuration error")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)

// Configuration marks msg as a fatal configuration problem, keeping the
// operator-facing "Configuration Error:" prefix.
func Configuration(msg string) error {
	return Mark(New("Configuration Error: "+msg), ErrConfiguration)
}
