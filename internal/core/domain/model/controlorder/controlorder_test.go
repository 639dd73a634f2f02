package controlorder_test

import (
	"testing"
	"time"

	"shopfloor/internal/core/domain/model/controlorder"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewControlOrder(t *testing.T) {
	t.Run("creates pending order", func(t *testing.T) {
		co, err := controlorder.NewControlOrder(kernel.NewUUID(), "CO-1")

		require.NoError(t, err)
		assert.Equal(t, controlorder.Pending, co.Status())
		assert.False(t, co.IsCompleted())
		assert.Nil(t, co.ActualFinish())
	})

	t.Run("rejects empty order number", func(t *testing.T) {
		_, err := controlorder.NewControlOrder(kernel.NewUUID(), "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero id", func(t *testing.T) {
		_, err := controlorder.NewControlOrder(kernel.UUID{}, "CO-1")
		require.Error(t, err)
	})
}

func TestControlOrder_Complete(t *testing.T) {
	t.Run("completes from pending and sets finish time", func(t *testing.T) {
		co, err := controlorder.NewControlOrder(kernel.NewUUID(), "CO-1")
		require.NoError(t, err)

		require.NoError(t, co.Complete())

		assert.True(t, co.IsCompleted())
		require.NotNil(t, co.ActualFinish())
		assert.WithinDuration(t, time.Now().UTC(), *co.ActualFinish(), time.Minute)
	})

	t.Run("completes from in progress", func(t *testing.T) {
		co, err := controlorder.RestoreControlOrder(
			kernel.NewUUID(), "CO-2", controlorder.InProgress, nil)
		require.NoError(t, err)

		require.NoError(t, co.Complete())
		assert.True(t, co.IsCompleted())
	})

	t.Run("second completion is an invalid transition and keeps the finish time", func(t *testing.T) {
		co, err := controlorder.NewControlOrder(kernel.NewUUID(), "CO-3")
		require.NoError(t, err)
		require.NoError(t, co.Complete())
		firstFinish := *co.ActualFinish()

		err = co.Complete()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, firstFinish, *co.ActualFinish())
	})
}

func TestRestoreControlOrder(t *testing.T) {
	t.Run("restores completed order", func(t *testing.T) {
		finished := time.Now().UTC().Add(-time.Hour)

		co, err := controlorder.RestoreControlOrder(
			kernel.NewUUID(), "CO-4", controlorder.Completed, &finished)

		require.NoError(t, err)
		assert.True(t, co.IsCompleted())
		assert.Equal(t, finished, *co.ActualFinish())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := controlorder.RestoreControlOrder(
			kernel.NewUUID(), "CO-5", controlorder.Unknown, nil)
		require.Error(t, err)
	})
}

func TestControlOrder_Validate(t *testing.T) {
	t.Run("zero value is rejected", func(t *testing.T) {
		var co controlorder.ControlOrder
		require.ErrorIs(t, co.Validate(), controlorder.ErrControlOrderIsNotConstructed)
	})
}
