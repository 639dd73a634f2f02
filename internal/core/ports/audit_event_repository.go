package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/audit"
)

// AuditEventRepository defines the persistence contract for audit events.
// Events are additive only: there is no update or delete.
type AuditEventRepository interface {
	// Add persists a new audit event.
	Add(ctx context.Context, event *audit.Event) error
}
