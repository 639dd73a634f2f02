package commands

import (
	"context"
)

// Collaborator interfaces between command handlers. The completion handler
// triggers aggregation and audit recording through these, so both side
// effects stay mockable and their failure policies stay explicit code
// paths: aggregation failures are contained by the caller, audit recording
// failures propagate.
type (
	// CompletionNotifier receives the child-completed signal emitted after a
	// work order completion commits. Implemented by NotifyChildCompletedCommandHandler.
	CompletionNotifier interface {
		Handle(ctx context.Context, command NotifyChildCompletedCommand) error
	}

	// AuditRecorder records one audit event per lifecycle mutation.
	// Implemented by RecordAuditEventCommandHandler.
	AuditRecorder interface {
		Handle(ctx context.Context, command RecordAuditEventCommand) error
	}
)
