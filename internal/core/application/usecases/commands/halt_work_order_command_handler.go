package commands

import (
	"context"
	"fmt"

	"shopfloor/internal/core/domain/model/audit"
)

// HaltWorkOrderCommandHandler handles the business logic for halting
// production. Only an InProgress order can be halted; the recorded actual
// start time is left untouched so a later resume continues the same run.
type HaltWorkOrderCommandHandler struct {
	uowFactory    WorkOrderUoWFactory
	auditRecorder AuditRecorder
}

// NewHaltWorkOrderCommandHandler creates a handler for halt operations.
func NewHaltWorkOrderCommandHandler(
	uowFactory WorkOrderUoWFactory,
	auditRecorder AuditRecorder,
) HaltWorkOrderCommandHandler {
	return HaltWorkOrderCommandHandler{
		uowFactory:    uowFactory,
		auditRecorder: auditRecorder,
	}
}

// Handle processes the halt command in a single transaction.
func (h HaltWorkOrderCommandHandler) Handle(ctx context.Context, command HaltWorkOrderCommand) error {
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

	if err = wo.Halt(); err != nil {
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
		audit.EventOrderHalted,
		fmt.Sprintf("work order %s halted at workstation %s", wo.OrderNumber(), wo.WorkstationID()),
		command.Actor(),
	)
	if err != nil {
		return err
	}

	return h.auditRecorder.Handle(ctx, auditCommand)
}
