package commands

import (
	"context"
	"fmt"
	"log/slog"

	"shopfloor/internal/core/domain/model/audit"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/core/ports"
	"shopfloor/internal/pkg/errs"
)

// CompleteWorkOrderCommandHandler orchestrates work order completion.
//
// Side-effect ordering, in one transaction up to the commit:
//  1. Validate the InProgress precondition.
//  2. Credit the produced output to the inventory system. A failed credit
//     aborts the whole operation with a DependencyFailureError and the
//     status change is never persisted.
//  3. Persist the Completed status and finish time, commit.
//
// After the commit:
//  4. Signal the completion aggregator. Aggregation failures are logged
//     and contained - a committed child completion is the source of truth
//     and must never be reported as failed because a best-effort parent
//     projection could not be refreshed.
//  5. Record the audit event. Recording failures propagate.
type CompleteWorkOrderCommandHandler struct {
	uowFactory            WorkOrderUoWFactory
	inventory             ports.InventoryClient
	notifier              CompletionNotifier
	auditRecorder         AuditRecorder
	destinationLocationID string
	logger                *slog.Logger
}

// NewCompleteWorkOrderCommandHandler creates a handler for completion
// operations. destinationLocationID is the fixed downstream supermarket
// location credited with the produced output.
func NewCompleteWorkOrderCommandHandler(
	uowFactory WorkOrderUoWFactory,
	inventory ports.InventoryClient,
	notifier CompletionNotifier,
	auditRecorder AuditRecorder,
	destinationLocationID string,
	logger *slog.Logger,
) CompleteWorkOrderCommandHandler {
	return CompleteWorkOrderCommandHandler{
		uowFactory:            uowFactory,
		inventory:             inventory,
		notifier:              notifier,
		auditRecorder:         auditRecorder,
		destinationLocationID: destinationLocationID,
		logger:                logger.With("component", "complete_work_order_handler"),
	}
}

// Handle processes the completion command.
func (h CompleteWorkOrderCommandHandler) Handle(ctx context.Context, command CompleteWorkOrderCommand) error {
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

	// Check the precondition before touching the inventory system so an
	// invalid transition never produces a stray credit.
	if err = wo.Status().ValidateComplete(); err != nil {
		return err
	}

	credit := ports.StockCredit{
		DestinationLocationID: h.destinationLocationID,
		ItemKind:              wo.OrderType().ItemKind(),
		ItemID:                wo.ItemID(),
		Delta:                 wo.Quantity(),
		ReasonCode:            ports.ReasonProduction,
		Note:                  wo.OrderNumber(),
	}
	if err = h.inventory.CreditStock(ctx, credit); err != nil {
		return errs.NewDependencyFailureError("inventory", err)
	}

	if err = wo.Complete(); err != nil {
		return err
	}

	if err = repo.Update(ctx, wo); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyChildCompleted(ctx, command.OrderType(), wo.ControlOrderID())

	auditCommand, err := NewRecordAuditEventCommand(
		command.OrderType(),
		wo.ID(),
		audit.EventOrderCompleted,
		fmt.Sprintf("work order %s completed at workstation %s, credited %d x %s",
			wo.OrderNumber(), wo.WorkstationID(), wo.Quantity(), wo.ItemID()),
		command.Actor(),
	)
	if err != nil {
		return err
	}

	return h.auditRecorder.Handle(ctx, auditCommand)
}

// notifyChildCompleted signals the aggregator and contains any failure.
func (h CompleteWorkOrderCommandHandler) notifyChildCompleted(
	ctx context.Context,
	orderType workorder.OrderType,
	controlOrderID kernel.UUID,
) {
	notifyCommand, err := NewNotifyChildCompletedCommand(orderType, controlOrderID)
	if err == nil {
		err = h.notifier.Handle(ctx, notifyCommand)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "completion aggregation failed",
			"controlOrderId", controlOrderID.String(),
			"orderType", orderType.String(),
			"error", err)
	}
}
