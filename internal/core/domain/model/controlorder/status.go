package controlorder

import (
	"shopfloor/internal/pkg/errs"
)

// Status represents the lifecycle state of a control order. Control orders
// are mutated by this core only through auto-completion; the remaining
// transitions belong to external planning.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status assigned by upstream planning.
	Pending

	// InProgress indicates at least one child workstation order has started.
	InProgress

	// Completed indicates every child workstation order has completed.
	// This is a terminal state.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidError("status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateComplete checks whether the control order may be completed.
// Any non-terminal status may complete; completing twice is invalid, which
// is the guard the aggregator relies on for exactly-once semantics.
func (s Status) ValidateComplete() error {
	if s == Completed {
		return errs.NewInvalidTransitionError(
			"complete",
			[]string{Pending.String(), InProgress.String()},
			s.String(),
		)
	}
	return nil
}

// Complete transitions the status to Completed.
func (s Status) Complete() (Status, error) {
	if err := s.ValidateComplete(); err != nil {
		return 0, err
	}

	return Completed, nil
}
