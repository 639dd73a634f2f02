package commands_test

import (
	"context"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/audit"
	"shopfloor/internal/core/domain/model/controlorder"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Get(
	ctx context.Context,
	orderType workorder.OrderType,
	id kernel.UUID,
) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, orderType, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetAllByControlOrder(
	ctx context.Context,
	orderType workorder.OrderType,
	controlOrderID kernel.UUID,
) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx, orderType, controlOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workorder.WorkOrder), args.Error(1)
}

type MockControlOrderRepository struct{ mock.Mock }

func (m *MockControlOrderRepository) Add(ctx context.Context, co *controlorder.ControlOrder) error {
	args := m.Called(ctx, co)
	return args.Error(0)
}

func (m *MockControlOrderRepository) Update(ctx context.Context, co *controlorder.ControlOrder) error {
	args := m.Called(ctx, co)
	return args.Error(0)
}

func (m *MockControlOrderRepository) Get(ctx context.Context, id kernel.UUID) (*controlorder.ControlOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*controlorder.ControlOrder), args.Error(1)
}

func (m *MockControlOrderRepository) GetForUpdate(
	ctx context.Context,
	id kernel.UUID,
) (*controlorder.ControlOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*controlorder.ControlOrder), args.Error(1)
}

type MockAuditEventRepository struct{ mock.Mock }

func (m *MockAuditEventRepository) Add(ctx context.Context, event *audit.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockWorkOrderUoW struct{ mock.Mock }

func (m *MockWorkOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

type MockWorkOrderUoWFactory struct{ mock.Mock }

func (m *MockWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkOrderUoW)
}

type MockAggregationUoW struct{ mock.Mock }

func (m *MockAggregationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAggregationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAggregationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAggregationUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

func (m *MockAggregationUoW) ControlOrderRepository() ports.ControlOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ControlOrderRepository)
}

type MockAggregationUoWFactory struct{ mock.Mock }

func (m *MockAggregationUoWFactory) Create() commands.AggregationUoW {
	args := m.Called()
	return args.Get(0).(commands.AggregationUoW)
}

type MockAuditUoW struct{ mock.Mock }

func (m *MockAuditUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuditUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuditUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuditUoW) AuditEventRepository() ports.AuditEventRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditEventRepository)
}

type MockAuditUoWFactory struct{ mock.Mock }

func (m *MockAuditUoWFactory) Create() commands.AuditUoW {
	args := m.Called()
	return args.Get(0).(commands.AuditUoW)
}

type MockInventoryClient struct{ mock.Mock }

func (m *MockInventoryClient) CreditStock(ctx context.Context, credit ports.StockCredit) error {
	args := m.Called(ctx, credit)
	return args.Error(0)
}

type MockCompletionNotifier struct{ mock.Mock }

func (m *MockCompletionNotifier) Handle(ctx context.Context, command commands.NotifyChildCompletedCommand) error {
	args := m.Called(ctx, command)
	return args.Error(0)
}

type MockAuditRecorder struct{ mock.Mock }

func (m *MockAuditRecorder) Handle(ctx context.Context, command commands.RecordAuditEventCommand) error {
	args := m.Called(ctx, command)
	return args.Error(0)
}

type MockWebhookDispatcher struct{ mock.Mock }

func (m *MockWebhookDispatcher) Dispatch(ctx context.Context, event *audit.Event) {
	m.Called(ctx, event)
}

// restoreTestWorkOrder builds a valid work order in the given status.
func restoreTestWorkOrder(
	t testingT,
	orderType workorder.OrderType,
	status workorder.Status,
) *workorder.WorkOrder {
	wo, err := workorder.RestoreWorkOrder(
		kernel.NewUUID(),
		orderType,
		"WO-1001",
		"WS-07",
		kernel.NewUUID(),
		"ITEM-42",
		"12T Gear",
		25,
		status,
		nil, nil, nil, nil,
	)
	if err != nil {
		t.Fatalf("restore work order: %v", err)
	}
	return wo
}

type testingT interface {
	Fatalf(format string, args ...any)
}
