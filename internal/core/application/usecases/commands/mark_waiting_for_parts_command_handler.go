package commands

import (
	"context"
	"fmt"

	"shopfloor/internal/core/domain/model/audit"
)

// MarkWaitingForPartsCommandHandler handles the business logic for parking
// a work order on a supply order.
type MarkWaitingForPartsCommandHandler struct {
	uowFactory    WorkOrderUoWFactory
	auditRecorder AuditRecorder
}

// NewMarkWaitingForPartsCommandHandler creates a handler for waiting-for-parts operations.
func NewMarkWaitingForPartsCommandHandler(
	uowFactory WorkOrderUoWFactory,
	auditRecorder AuditRecorder,
) MarkWaitingForPartsCommandHandler {
	return MarkWaitingForPartsCommandHandler{
		uowFactory:    uowFactory,
		auditRecorder: auditRecorder,
	}
}

// Handle processes the waiting-for-parts command in a single transaction.
// The only precondition is that the order exists.
func (h MarkWaitingForPartsCommandHandler) Handle(ctx context.Context, command MarkWaitingForPartsCommand) error {
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

	if err = wo.MarkWaitingForParts(command.SupplyOrderID()); err != nil {
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
		audit.EventOrderWaitingForParts,
		fmt.Sprintf("work order %s waiting for parts from supply order %d",
			wo.OrderNumber(), command.SupplyOrderID()),
		command.Actor(),
	)
	if err != nil {
		return err
	}

	return h.auditRecorder.Handle(ctx, auditCommand)
}
