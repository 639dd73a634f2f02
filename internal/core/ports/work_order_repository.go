// Package ports defines repository and outbound collaborator interfaces for
// the shopfloor domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for workstation order
// aggregates. All reads are scoped by order type: the lifecycle engine is
// generic over the order type and each logical engine instance only sees
// orders of its own type.
type WorkOrderRepository interface {
	// Add persists a new work order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get retrieves a work order of the given type by its unique identifier.
	// Returns an ObjectNotFoundError if no order of that type exists under the id.
	Get(ctx context.Context, orderType workorder.OrderType, id kernel.UUID) (*workorder.WorkOrder, error)

	// GetAllByControlOrder retrieves every child work order of the given type
	// under a control order. The completion aggregator re-reads this full set
	// on every notification rather than maintaining a counter, so externally
	// added or removed children can never cause drift.
	GetAllByControlOrder(
		ctx context.Context,
		orderType workorder.OrderType,
		controlOrderID kernel.UUID,
	) ([]*workorder.WorkOrder, error)
}
