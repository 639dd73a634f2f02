package commands

import (
	"context"
	"fmt"

	"shopfloor/internal/core/domain/model/audit"
	"shopfloor/internal/core/domain/model/workorder"
)

// NotifyChildCompletedCommandHandler re-evaluates a control order whenever
// one of its children completes.
//
// The handler never trusts the notification payload: it re-reads all
// children of the control order inside the transaction and counts their
// completions fresh. Two children finishing at the same moment each run
// this evaluation; the row-level write lock taken by GetForUpdate
// serializes them, and the IsCompleted re-check under the lock guarantees
// the parent transitions to Completed exactly once.
type NotifyChildCompletedCommandHandler struct {
	uowFactory    AggregationUoWFactory
	auditRecorder AuditRecorder
}

// NewNotifyChildCompletedCommandHandler creates the completion aggregator.
func NewNotifyChildCompletedCommandHandler(
	uowFactory AggregationUoWFactory,
	auditRecorder AuditRecorder,
) NotifyChildCompletedCommandHandler {
	return NotifyChildCompletedCommandHandler{
		uowFactory:    uowFactory,
		auditRecorder: auditRecorder,
	}
}

// Handle processes a child-completed notification in a single transaction.
func (h NotifyChildCompletedCommandHandler) Handle(ctx context.Context, command NotifyChildCompletedCommand) error {
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

	children, err := uow.WorkOrderRepository().GetAllByControlOrder(ctx, command.OrderType(), command.ControlOrderID())
	if err != nil {
		return err
	}

	if len(children) == 0 {
		return nil
	}

	completed := 0
	for _, child := range children {
		if child.Status() == workorder.Completed {
			completed++
		}
	}

	if completed != len(children) {
		return nil
	}

	controlOrderRepo := uow.ControlOrderRepository()
	co, err := controlOrderRepo.GetForUpdate(ctx, command.ControlOrderID())
	if err != nil {
		return err
	}

	// A concurrent notification may have completed the parent while we
	// were counting. The lock is held, so this check is authoritative.
	if co.IsCompleted() {
		return nil
	}

	if err = co.Complete(); err != nil {
		return err
	}

	if err = controlOrderRepo.Update(ctx, co); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	auditCommand, err := NewRecordAuditEventCommand(
		command.OrderType(),
		co.ID(),
		audit.EventControlOrderCompleted,
		fmt.Sprintf("control order %s completed, all %d work orders finished", co.OrderNumber(), completed),
		audit.AnonymousActor(),
	)
	if err != nil {
		return err
	}

	return h.auditRecorder.Handle(ctx, auditCommand)
}
