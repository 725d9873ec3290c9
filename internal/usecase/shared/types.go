package shared

import (
	"timewise/internal/domain/availability"
)

type BootstrapOutcome string

const (
	// every field was stored and usable
	OutcomeFound BootstrapOutcome = "found"
	// some fields fell back to defaults; missing rows were written back
	OutcomeMerged BootstrapOutcome = "merged"
	// the container did not exist and was created with the default policy
	OutcomeCreated BootstrapOutcome = "created"
)

type BootstrapResult struct {
	Policy  availability.Policy
	Outcome BootstrapOutcome
}
