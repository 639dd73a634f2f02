package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/controlorder"
	"shopfloor/internal/core/domain/model/kernel"
)

// ControlOrderRepository defines the persistence contract for control order
// aggregates.
type ControlOrderRepository interface {
	// Add persists a new control order aggregate to storage.
	Add(ctx context.Context, aggregate *controlorder.ControlOrder) error

	// Update persists changes to an existing control order aggregate.
	Update(ctx context.Context, aggregate *controlorder.ControlOrder) error

	// Get retrieves a control order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*controlorder.ControlOrder, error)

	// GetForUpdate retrieves a control order by id while taking a row-level
	// write lock inside the current transaction. Concurrent completion
	// notifications for the same control order serialize on this lock, so
	// only the first one past the already-completed re-check performs the
	// terminal transition.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*controlorder.ControlOrder, error)
}
