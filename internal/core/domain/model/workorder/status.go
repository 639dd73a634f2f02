package workorder

import (
	"shopfloor/internal/pkg/errs"
)

// Status represents the lifecycle state of a workstation order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct production workflow.
//
// State transitions:
//
//	Pending ──start──> InProgress ──complete──> Completed (terminal)
//	Pending ──markWaitingForParts──> WaitingForParts ──start──> InProgress
//	InProgress ──halt──> Halted ──resume──> InProgress
//	(any state) ──markWaitingForParts──> WaitingForParts
//
// The markWaitingForParts path is deliberately permissive: it carries no
// status precondition and is callable from any state, Completed included.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned by upstream planning.
	// Orders in this status are waiting to be started at their workstation.
	Pending

	// WaitingForParts indicates the order is blocked on a supply order
	// delivering missing input parts.
	WaitingForParts

	// InProgress indicates the workstation is actively producing the order.
	InProgress

	// Halted indicates production was interrupted and can be resumed.
	Halted

	// Completed indicates production finished and output was credited.
	// This is a terminal state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Pending:         "Pending",
		WaitingForParts: "WaitingForParts",
		InProgress:      "InProgress",
		Halted:          "Halted",
		Completed:       "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "Pending",
		WaitingForParts: "WaitingForParts",
		InProgress:      "InProgress",
		Halted:          "Halted",
		Completed:       "Completed",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other unmapped values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateStart checks whether the order may be started from this status.
//
// Valid starting statuses:
//   - Pending (first start at the workstation)
//   - WaitingForParts (missing parts arrived)
//
// Returns an InvalidTransitionError reporting the attempted operation, the
// required status set, and the actual status otherwise.
func (s Status) ValidateStart() error {
	if s != Pending && s != WaitingForParts {
		return errs.NewInvalidTransitionError(
			"start",
			[]string{Pending.String(), WaitingForParts.String()},
			s.String(),
		)
	}
	return nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress
//   - WaitingForParts -> InProgress
func (s Status) Start() (Status, error) {
	if err := s.ValidateStart(); err != nil {
		return 0, err
	}

	return InProgress, nil
}

// ValidateComplete checks whether the order may be completed from this status.
// Completion is only valid while production is InProgress.
func (s Status) ValidateComplete() error {
	if s != InProgress {
		return errs.NewInvalidTransitionError(
			"complete",
			[]string{InProgress.String()},
			s.String(),
		)
	}
	return nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
//
// Completed is a terminal state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if err := s.ValidateComplete(); err != nil {
		return 0, err
	}

	return Completed, nil
}

// ValidateHalt checks whether production may be halted from this status.
func (s Status) ValidateHalt() error {
	if s != InProgress {
		return errs.NewInvalidTransitionError(
			"halt",
			[]string{InProgress.String()},
			s.String(),
		)
	}
	return nil
}

// Halt transitions the status to Halted.
//
// Valid transitions:
//   - InProgress -> Halted
func (s Status) Halt() (Status, error) {
	if err := s.ValidateHalt(); err != nil {
		return 0, err
	}

	return Halted, nil
}

// ValidateResume checks whether production may be resumed from this status.
func (s Status) ValidateResume() error {
	if s != Halted {
		return errs.NewInvalidTransitionError(
			"resume",
			[]string{Halted.String()},
			s.String(),
		)
	}
	return nil
}

// Resume transitions the status back to InProgress.
//
// Valid transitions:
//   - Halted -> InProgress
//
// Resuming does not reset production timestamps; the order keeps the
// actual start time recorded on its first entry into InProgress.
func (s Status) Resume() (Status, error) {
	if err := s.ValidateResume(); err != nil {
		return 0, err
	}

	return InProgress, nil
}

// MarkWaitingForParts transitions the status to WaitingForParts.
// There is no status precondition: the path is callable from any state,
// Completed included. This mirrors the behavior of the per-workstation
// services this engine generalizes and is asserted by tests as-is.
func (s Status) MarkWaitingForParts() Status {
	return WaitingForParts
}
