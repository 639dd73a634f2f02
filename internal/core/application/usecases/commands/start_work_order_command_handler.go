package commands

import (
	"context"
	"fmt"

	"shopfloor/internal/core/domain/model/audit"
)

// StartWorkOrderCommandHandler handles the business logic for starting
// production of a work order. Moves the order into InProgress and records
// the actual start time on the first start only; re-entering production
// after a halt never resets it.
type StartWorkOrderCommandHandler struct {
	uowFactory    WorkOrderUoWFactory
	auditRecorder AuditRecorder
}

// NewStartWorkOrderCommandHandler creates a handler for start operations.
func NewStartWorkOrderCommandHandler(
	uowFactory WorkOrderUoWFactory,
	auditRecorder AuditRecorder,
) StartWorkOrderCommandHandler {
	return StartWorkOrderCommandHandler{
		uowFactory:    uowFactory,
		auditRecorder: auditRecorder,
	}
}

// Handle processes the start command in a single transaction.
// Fails with an InvalidTransitionError if the order is not Pending or
// WaitingForParts, and with an ObjectNotFoundError if it does not exist.
// The audit event is recorded after the commit; recording failures
// propagate to the caller.
func (h StartWorkOrderCommandHandler) Handle(ctx context.Context, command StartWorkOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()
	wo, err := repo.Get(ctx, command.OrderType(), command.OrderID())
	if err != nil {
		return err
	}

	if err = wo.Start(); err != nil {
		return err
	}

	if err = repo.Update(ctx, wo); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	auditCommand, err := NewRecordAuditEventCommand(
		command.OrderType(),
		wo.ID(),
		audit.EventOrderStarted,
		fmt.Sprintf("work order %s started at workstation %s", wo.OrderNumber(), wo.WorkstationID()),
		command.Actor(),
	)
	if err != nil {
		return err
	}

	return h.auditRecorder.Handle(ctx, auditCommand)
}
