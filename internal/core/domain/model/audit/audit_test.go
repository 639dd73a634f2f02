package audit_test

import (
	"testing"
	"time"

	"shopfloor/internal/core/domain/model/audit"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorFromRequest(t *testing.T) {
	t.Run("parses numeric user id and role", func(t *testing.T) {
		actor := audit.ActorFromRequest("42", "operator")

		require.NotNil(t, actor.UserID())
		assert.Equal(t, int64(42), *actor.UserID())
		require.NotNil(t, actor.UserRole())
		assert.Equal(t, "operator", *actor.UserRole())
	})

	t.Run("invalid user id is dropped, not rejected", func(t *testing.T) {
		actor := audit.ActorFromRequest("not-a-number", "operator")

		assert.Nil(t, actor.UserID())
		require.NotNil(t, actor.UserRole())
	})

	t.Run("empty fields are absent", func(t *testing.T) {
		actor := audit.ActorFromRequest("", "")

		assert.Nil(t, actor.UserID())
		assert.Nil(t, actor.UserRole())
	})
}

func TestNewEvent(t *testing.T) {
	t.Run("creates event with timestamp", func(t *testing.T) {
		event, err := audit.NewEvent(
			kernel.NewUUID(),
			workorder.TypeGearAssembly,
			kernel.NewUUID(),
			audit.EventOrderStarted,
			"order GA-1 started",
			audit.ActorFromRequest("7", "operator"),
		)

		require.NoError(t, err)
		require.NoError(t, event.Validate())
		assert.Equal(t, audit.EventOrderStarted, event.EventType())
		assert.Equal(t, "order GA-1 started", event.Description())
		assert.WithinDuration(t, time.Now().UTC(), event.CreatedAt(), time.Minute)
		require.NotNil(t, event.Actor().UserID())
		assert.Equal(t, int64(7), *event.Actor().UserID())
	})

	t.Run("anonymous actor is allowed", func(t *testing.T) {
		event, err := audit.NewEvent(
			kernel.NewUUID(),
			workorder.TypePartPreProduction,
			kernel.NewUUID(),
			audit.EventOrderHalted,
			"",
			audit.AnonymousActor(),
		)

		require.NoError(t, err)
		assert.Nil(t, event.Actor().UserID())
		assert.Nil(t, event.Actor().UserRole())
	})

	t.Run("requires event type", func(t *testing.T) {
		_, err := audit.NewEvent(
			kernel.NewUUID(),
			workorder.TypeGearAssembly,
			kernel.NewUUID(),
			"",
			"desc",
			audit.AnonymousActor(),
		)
		require.Error(t, err)
	})

	t.Run("requires valid ids", func(t *testing.T) {
		_, err := audit.NewEvent(
			kernel.UUID{},
			workorder.TypeGearAssembly,
			kernel.NewUUID(),
			audit.EventOrderStarted,
			"desc",
			audit.AnonymousActor(),
		)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var event audit.Event
		require.ErrorIs(t, event.Validate(), audit.ErrEventIsNotConstructed)
	})
}
