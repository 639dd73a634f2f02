package commands

import (
	"context"
	"fmt"

	"shopfloor/internal/core/domain/model/audit"
)

// ResumeWorkOrderCommandHandler handles the business logic for resuming a
// halted work order. The order re-enters InProgress with its original
// actual start time intact.
type ResumeWorkOrderCommandHandler struct {
	uowFactory    WorkOrderUoWFactory
	auditRecorder AuditRecorder
}

// NewResumeWorkOrderCommandHandler creates a handler for resume operations.
func NewResumeWorkOrderCommandHandler(
	uowFactory WorkOrderUoWFactory,
	auditRecorder AuditRecorder,
) ResumeWorkOrderCommandHandler {
	return ResumeWorkOrderCommandHandler{
		uowFactory:    uowFactory,
		auditRecorder: auditRecorder,
	}
}

// Handle processes the resume command in a single transaction.
func (h ResumeWorkOrderCommandHandler) Handle(ctx context.Context, command ResumeWorkOrderCommand) error {
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

	if err = wo.Resume(); err != nil {
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
		audit.EventOrderResumed,
		fmt.Sprintf("work order %s resumed at workstation %s", wo.OrderNumber(), wo.WorkstationID()),
		command.Actor(),
	)
	if err != nil {
		return err
	}

	return h.auditRecorder.Handle(ctx, auditCommand)
}
