package workorder_test

import (
	"testing"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkOrder(t *testing.T) *workorder.WorkOrder {
	t.Helper()

	wo, err := workorder.NewWorkOrder(
		kernel.NewUUID(),
		workorder.TypeGearAssembly,
		"GA-0001",
		"WS-01",
		kernel.NewUUID(),
		"gearbox-std",
		"Standard Gearbox",
		4,
		nil,
	)
	require.NoError(t, err)
	return wo
}

func TestNewWorkOrder(t *testing.T) {
	t.Run("creates pending order with no timestamps", func(t *testing.T) {
		wo := newTestWorkOrder(t)

		assert.Equal(t, workorder.Pending, wo.Status())
		assert.Equal(t, "GA-0001", wo.OrderNumber())
		assert.Equal(t, "WS-01", wo.WorkstationID())
		assert.Equal(t, workorder.TypeGearAssembly, wo.OrderType())
		assert.Equal(t, 4, wo.Quantity())
		assert.Nil(t, wo.ActualStart())
		assert.Nil(t, wo.ActualFinish())
		assert.Nil(t, wo.SupplyOrderID())
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		controlOrderID := kernel.NewUUID()

		tests := []struct {
			name string
			make func() (*workorder.WorkOrder, error)
		}{
			{"zero id", func() (*workorder.WorkOrder, error) {
				return workorder.NewWorkOrder(kernel.UUID{}, workorder.TypeGearAssembly,
					"GA-1", "WS-01", controlOrderID, "item", "Item", 1, nil)
			}},
			{"unknown order type", func() (*workorder.WorkOrder, error) {
				return workorder.NewWorkOrder(kernel.NewUUID(), workorder.TypeUnknown,
					"GA-1", "WS-01", controlOrderID, "item", "Item", 1, nil)
			}},
			{"empty order number", func() (*workorder.WorkOrder, error) {
				return workorder.NewWorkOrder(kernel.NewUUID(), workorder.TypeGearAssembly,
					"", "WS-01", controlOrderID, "item", "Item", 1, nil)
			}},
			{"empty workstation", func() (*workorder.WorkOrder, error) {
				return workorder.NewWorkOrder(kernel.NewUUID(), workorder.TypeGearAssembly,
					"GA-1", "", controlOrderID, "item", "Item", 1, nil)
			}},
			{"zero control order id", func() (*workorder.WorkOrder, error) {
				return workorder.NewWorkOrder(kernel.NewUUID(), workorder.TypeGearAssembly,
					"GA-1", "WS-01", kernel.UUID{}, "item", "Item", 1, nil)
			}},
			{"empty item id", func() (*workorder.WorkOrder, error) {
				return workorder.NewWorkOrder(kernel.NewUUID(), workorder.TypeGearAssembly,
					"GA-1", "WS-01", controlOrderID, "", "Item", 1, nil)
			}},
			{"non-positive quantity", func() (*workorder.WorkOrder, error) {
				return workorder.NewWorkOrder(kernel.NewUUID(), workorder.TypeGearAssembly,
					"GA-1", "WS-01", controlOrderID, "item", "Item", 0, nil)
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := tt.make()
				require.Error(t, err)
			})
		}
	})
}

func TestWorkOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		require.NoError(t, newTestWorkOrder(t).Validate())
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		var wo workorder.WorkOrder
		require.ErrorIs(t, wo.Validate(), workorder.ErrWorkOrderIsNotConstructed)
	})

	t.Run("nil is rejected", func(t *testing.T) {
		var wo *workorder.WorkOrder
		require.ErrorIs(t, wo.Validate(), workorder.ErrWorkOrderIsNotConstructed)
	})
}

func TestWorkOrder_Start(t *testing.T) {
	t.Run("sets actual start on first start only", func(t *testing.T) {
		wo := newTestWorkOrder(t)

		require.NoError(t, wo.Start())
		require.NotNil(t, wo.ActualStart())
		firstStart := *wo.ActualStart()

		// Repeated halt/resume cycles must not touch the start time.
		require.NoError(t, wo.Halt())
		require.NoError(t, wo.Resume())
		require.NoError(t, wo.Halt())
		require.NoError(t, wo.Resume())

		require.NotNil(t, wo.ActualStart())
		assert.Equal(t, firstStart, *wo.ActualStart())
	})

	t.Run("starts from waiting for parts and clears supply order link", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		require.NoError(t, wo.MarkWaitingForParts(42))
		require.NotNil(t, wo.SupplyOrderID())

		require.NoError(t, wo.Start())

		assert.Equal(t, workorder.InProgress, wo.Status())
		assert.Nil(t, wo.SupplyOrderID())
	})

	t.Run("rejected from in progress", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		require.NoError(t, wo.Start())

		err := wo.Start()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, workorder.InProgress, wo.Status())
	})
}

func TestWorkOrder_Complete(t *testing.T) {
	t.Run("sets finish time from in progress", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		require.NoError(t, wo.Start())

		require.NoError(t, wo.Complete())

		assert.Equal(t, workorder.Completed, wo.Status())
		require.NotNil(t, wo.ActualFinish())
		assert.WithinDuration(t, time.Now().UTC(), *wo.ActualFinish(), time.Minute)
	})

	t.Run("rejected from halted, status unchanged", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		require.NoError(t, wo.Start())
		require.NoError(t, wo.Halt())

		err := wo.Complete()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, workorder.Halted, wo.Status())
		assert.Nil(t, wo.ActualFinish())
	})

	t.Run("rejected from every non in-progress status", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		require.ErrorIs(t, wo.Complete(), errs.ErrInvalidTransition)

		require.NoError(t, wo.Start())
		require.NoError(t, wo.Complete())

		// Completed is terminal.
		require.ErrorIs(t, wo.Complete(), errs.ErrInvalidTransition)
		require.ErrorIs(t, wo.Start(), errs.ErrInvalidTransition)
	})
}

func TestWorkOrder_HaltResume(t *testing.T) {
	wo := newTestWorkOrder(t)

	require.ErrorIs(t, wo.Halt(), errs.ErrInvalidTransition)
	require.ErrorIs(t, wo.Resume(), errs.ErrInvalidTransition)

	require.NoError(t, wo.Start())
	require.NoError(t, wo.Halt())
	assert.Equal(t, workorder.Halted, wo.Status())

	require.NoError(t, wo.Resume())
	assert.Equal(t, workorder.InProgress, wo.Status())
}

func TestWorkOrder_MarkWaitingForParts(t *testing.T) {
	t.Run("from in progress (permissive path)", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		require.NoError(t, wo.Start())

		require.NoError(t, wo.MarkWaitingForParts(42))

		assert.Equal(t, workorder.WaitingForParts, wo.Status())
		require.NotNil(t, wo.SupplyOrderID())
		assert.Equal(t, int64(42), *wo.SupplyOrderID())
	})

	t.Run("even from completed (permissive path preserved)", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		require.NoError(t, wo.Start())
		require.NoError(t, wo.Complete())

		require.NoError(t, wo.MarkWaitingForParts(7))

		assert.Equal(t, workorder.WaitingForParts, wo.Status())
	})

	t.Run("rejects non-positive supply order id", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		require.ErrorIs(t, wo.MarkWaitingForParts(0), errs.ErrValueIsInvalid)
	})
}

func TestRestoreWorkOrder(t *testing.T) {
	t.Run("restores status and timestamps", func(t *testing.T) {
		started := time.Now().UTC().Add(-time.Hour)
		supplyID := int64(11)

		wo, err := workorder.RestoreWorkOrder(
			kernel.NewUUID(), workorder.TypePartPreProduction, "PP-9", "WS-07",
			kernel.NewUUID(), "axle-blank", "Axle Blank", 20,
			workorder.WaitingForParts, nil, &started, nil, &supplyID,
		)

		require.NoError(t, err)
		assert.Equal(t, workorder.WaitingForParts, wo.Status())
		assert.Equal(t, started, *wo.ActualStart())
		assert.Equal(t, supplyID, *wo.SupplyOrderID())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := workorder.RestoreWorkOrder(
			kernel.NewUUID(), workorder.TypeGearAssembly, "GA-1", "WS-01",
			kernel.NewUUID(), "item", "Item", 1,
			workorder.Unknown, nil, nil, nil, nil,
		)
		require.Error(t, err)
	})
}

func TestOrderType(t *testing.T) {
	t.Run("item kinds", func(t *testing.T) {
		assert.Equal(t, workorder.ItemKindModule, workorder.TypeGearAssembly.ItemKind())
		assert.Equal(t, workorder.ItemKindPart, workorder.TypePartPreProduction.ItemKind())
	})

	t.Run("slug round trip", func(t *testing.T) {
		for _, ot := range []workorder.OrderType{
			workorder.TypeGearAssembly,
			workorder.TypePartPreProduction,
		} {
			parsed, err := workorder.ParseOrderType(ot.Slug())
			require.NoError(t, err)
			assert.Equal(t, ot, parsed)
		}
	})

	t.Run("unknown slug rejected", func(t *testing.T) {
		_, err := workorder.ParseOrderType("paint-shop")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
