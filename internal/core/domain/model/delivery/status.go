package delivery

import (
	"fmt"

	"coldroute/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery run.
//
// State transitions:
//
//	Planned ──> Completed
//	   │
//	   └──────> Canceled
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Planned is the initial status of a scheduled delivery run.
	Planned

	// Completed indicates the run was driven. Final state.
	Completed

	// Canceled indicates the run was called off. Final state.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Planned:       "planned",
		Completed:     "completed",
		Canceled:      "canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Planned:   "planned",
		Completed: "completed",
		Canceled:  "canceled",
	}
}

// StatusFromString parses a status persisted as text.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("delivery status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase status name used in persistence and the API.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Complete returns the status after completing the run.
func (s Status) Complete() (Status, error) {
	if s != Planned {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status transition",
			fmt.Errorf("%s is not a valid status to complete", s))
	}
	return Completed, nil
}

// Cancel returns the status after canceling the run.
func (s Status) Cancel() (Status, error) {
	if s != Planned {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status transition",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}
	return Canceled, nil
}
