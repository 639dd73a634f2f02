package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/audit"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/core/ports"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSupermarketLocationID = "SUPERMARKET-1"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCompleteWorkOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	wo := restoreTestWorkOrder(t, workorder.TypeGearAssembly, workorder.InProgress)
	cmd, err := commands.NewCompleteWorkOrderCommand(workorder.TypeGearAssembly, wo.ID(), audit.AnonymousActor())
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	inventory := new(MockInventoryClient)
	notifier := new(MockCompletionNotifier)
	recorder := new(MockAuditRecorder)

	expectedCredit := ports.StockCredit{
		DestinationLocationID: testSupermarketLocationID,
		ItemKind:              workorder.ItemKindModule,
		ItemID:                wo.ItemID(),
		Delta:                 wo.Quantity(),
		ReasonCode:            ports.ReasonProduction,
		Note:                  wo.OrderNumber(),
	}

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, workorder.TypeGearAssembly, wo.ID()).Return(wo, nil).Once(),
		inventory.On("CreditStock", ctx, expectedCredit).Return(nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*workorder.WorkOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Handle", ctx, mock.AnythingOfType("commands.NotifyChildCompletedCommand")).Return(nil).Once(),
		recorder.On("Handle", ctx, mock.AnythingOfType("commands.RecordAuditEventCommand")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteWorkOrderCommandHandler(
		factory, inventory, notifier, recorder, testSupermarketLocationID, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, workorder.Completed, wo.Status())
	assert.NotNil(t, wo.ActualFinish())

	notifyCmd := notifier.Calls[0].Arguments[1].(commands.NotifyChildCompletedCommand)
	assert.Equal(t, wo.ControlOrderID(), notifyCmd.ControlOrderID())

	auditCmd := recorder.Calls[0].Arguments[1].(commands.RecordAuditEventCommand)
	assert.Equal(t, audit.EventOrderCompleted, auditCmd.EventType())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	inventory.AssertExpectations(t)
	notifier.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestCompleteWorkOrderCommandHandler_Handle_InvalidTransitionSkipsInventory(t *testing.T) {
	ctx := t.Context()
	wo := restoreTestWorkOrder(t, workorder.TypeGearAssembly, workorder.Pending)
	cmd, err := commands.NewCompleteWorkOrderCommand(workorder.TypeGearAssembly, wo.ID(), audit.AnonymousActor())
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	inventory := new(MockInventoryClient)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, workorder.TypeGearAssembly, wo.ID()).Return(wo, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockCompletionNotifier)
	recorder := new(MockAuditRecorder)
	handler := commands.NewCompleteWorkOrderCommandHandler(
		factory, inventory, notifier, recorder, testSupermarketLocationID, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	var transitionErr *errs.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "complete", transitionErr.Operation)
	assert.Equal(t, []string{"InProgress"}, transitionErr.Required)
	assert.Equal(t, "Pending", transitionErr.Actual)

	// An invalid transition must never reach the inventory system.
	inventory.AssertNotCalled(t, "CreditStock", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCompleteWorkOrderCommandHandler_Handle_InventoryFailureAbortsCompletion(t *testing.T) {
	ctx := t.Context()
	wo := restoreTestWorkOrder(t, workorder.TypePartPreProduction, workorder.InProgress)
	cmd, err := commands.NewCompleteWorkOrderCommand(workorder.TypePartPreProduction, wo.ID(), audit.AnonymousActor())
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	inventory := new(MockInventoryClient)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, workorder.TypePartPreProduction, wo.ID()).Return(wo, nil).Once(),
		inventory.On("CreditStock", ctx, mock.AnythingOfType("ports.StockCredit")).
			Return(errors.New("inventory unavailable")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockCompletionNotifier)
	recorder := new(MockAuditRecorder)
	handler := commands.NewCompleteWorkOrderCommandHandler(
		factory, inventory, notifier, recorder, testSupermarketLocationID, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrDependencyFailed)

	var depErr *errs.DependencyFailureError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "inventory", depErr.Dependency)

	// The failed credit must leave the order untouched.
	assert.Equal(t, workorder.InProgress, wo.Status())
	assert.Nil(t, wo.ActualFinish())
	repo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	notifier.AssertNotCalled(t, "Handle", ctx, mock.Anything)
	recorder.AssertNotCalled(t, "Handle", ctx, mock.Anything)
}

func TestCompleteWorkOrderCommandHandler_Handle_NotifierFailureIsContained(t *testing.T) {
	ctx := t.Context()
	wo := restoreTestWorkOrder(t, workorder.TypeGearAssembly, workorder.InProgress)
	cmd, err := commands.NewCompleteWorkOrderCommand(workorder.TypeGearAssembly, wo.ID(), audit.AnonymousActor())
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	inventory := new(MockInventoryClient)
	notifier := new(MockCompletionNotifier)
	recorder := new(MockAuditRecorder)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, workorder.TypeGearAssembly, wo.ID()).Return(wo, nil).Once(),
		inventory.On("CreditStock", ctx, mock.AnythingOfType("ports.StockCredit")).Return(nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*workorder.WorkOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Handle", ctx, mock.AnythingOfType("commands.NotifyChildCompletedCommand")).
			Return(errors.New("aggregation deadlock")).
			Once(),
		recorder.On("Handle", ctx, mock.AnythingOfType("commands.RecordAuditEventCommand")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteWorkOrderCommandHandler(
		factory, inventory, notifier, recorder, testSupermarketLocationID, discardLogger())
	err = handler.Handle(ctx, cmd)

	// Committed completion stays successful even when aggregation fails.
	require.NoError(t, err)
	assert.Equal(t, workorder.Completed, wo.Status())
	recorder.AssertExpectations(t)
}

func TestCompleteWorkOrderCommandHandler_Handle_AuditErrorPropagates(t *testing.T) {
	ctx := t.Context()
	wo := restoreTestWorkOrder(t, workorder.TypeGearAssembly, workorder.InProgress)
	cmd, err := commands.NewCompleteWorkOrderCommand(workorder.TypeGearAssembly, wo.ID(), audit.AnonymousActor())
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	inventory := new(MockInventoryClient)
	notifier := new(MockCompletionNotifier)
	recorder := new(MockAuditRecorder)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, workorder.TypeGearAssembly, wo.ID()).Return(wo, nil).Once(),
		inventory.On("CreditStock", ctx, mock.AnythingOfType("ports.StockCredit")).Return(nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*workorder.WorkOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Handle", ctx, mock.AnythingOfType("commands.NotifyChildCompletedCommand")).Return(nil).Once(),
		recorder.On("Handle", ctx, mock.AnythingOfType("commands.RecordAuditEventCommand")).
			Return(errors.New("audit store unavailable")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteWorkOrderCommandHandler(
		factory, inventory, notifier, recorder, testSupermarketLocationID, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "audit store unavailable")
}
