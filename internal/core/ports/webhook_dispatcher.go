package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/audit"
)

// WebhookDispatcher fans a persisted audit event out to zero or more
// registered subscriber endpoints. Dispatch is best-effort by contract:
// delivery failures are handled (logged) inside the implementation and
// never surface to the caller, and no retry is scheduled.
type WebhookDispatcher interface {
	Dispatch(ctx context.Context, event *audit.Event)
}
