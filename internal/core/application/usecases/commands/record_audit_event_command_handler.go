package commands

import (
	"context"

	"shopfloor/internal/core/domain/model/audit"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/ports"
)

// RecordAuditEventCommandHandler appends an event to the audit trail and
// fans it out to webhook subscribers. Persistence failures propagate to the
// caller; webhook delivery is best-effort and handled by the dispatcher.
type RecordAuditEventCommandHandler struct {
	uowFactory AuditUoWFactory
	dispatcher ports.WebhookDispatcher
}

// NewRecordAuditEventCommandHandler creates a handler for audit recording.
func NewRecordAuditEventCommandHandler(
	uowFactory AuditUoWFactory,
	dispatcher ports.WebhookDispatcher,
) RecordAuditEventCommandHandler {
	return RecordAuditEventCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle persists the event and dispatches it after the commit.
func (h RecordAuditEventCommandHandler) Handle(ctx context.Context, command RecordAuditEventCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	event, err := audit.NewEvent(
		kernel.NewUUID(),
		command.OrderType(),
		command.OrderID(),
		command.EventType(),
		command.Description(),
		command.Actor(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AuditEventRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, event)
	return nil
}
