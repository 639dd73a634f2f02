// Package workorder provides domain entities and business logic for
// workstation order management in the shopfloor system. It implements the
// WorkOrder aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - WorkOrder: The aggregate root managing order identity, production facts, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - OrderType: The workstation order variant the generic lifecycle engine is parameterized over
//
// Key business rules:
//   - Orders carry an immutable order number, a parent control order, and a positive quantity
//   - Status follows the workflow Pending -> InProgress -> Completed with
//     halt/resume and waiting-for-parts side paths
//   - The actual start time is recorded exactly once across halt/resume cycles
//   - The actual finish time is recorded if and only if the order completes
//   - markWaitingForParts carries no status precondition (permissive by design)
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package workorder
