package audit

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/pkg/errs"
)

// Event type codes recorded by the lifecycle operations.
const (
	EventOrderStarted          = "ORDER_STARTED"
	EventOrderCompleted        = "ORDER_COMPLETED"
	EventOrderHalted           = "ORDER_HALTED"
	EventOrderResumed          = "ORDER_RESUMED"
	EventOrderWaitingForParts  = "ORDER_WAITING_FOR_PARTS"
	EventControlOrderCompleted = "CONTROL_ORDER_COMPLETED"
)

var (
	// ErrEventIsNotConstructed is returned when an Event instance was not
	// created through the NewEvent factory method.
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent")
)

// Event is an immutable audit trail entry. One event is recorded per
// lifecycle mutation; events are purely additive and are never updated or
// deleted by this core. After persistence each event is fanned out to the
// registered webhook subscribers on a best-effort basis.
type Event struct {
	id          kernel.UUID
	orderType   workorder.OrderType
	orderID     kernel.UUID
	eventType   string
	description string
	actor       Actor
	createdAt   time.Time

	isConstructed bool
}

// NewEvent creates an audit Event. The creation timestamp is stamped here,
// immediately before the event is handed to persistence.
func NewEvent(
	id kernel.UUID,
	orderType workorder.OrderType,
	orderID kernel.UUID,
	eventType string,
	description string,
	actor Actor,
) (*Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderType.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if eventType == "" {
		return nil, errs.NewValueIsRequiredError("eventType")
	}

	return &Event{
		id:            id,
		orderType:     orderType,
		orderID:       orderID,
		eventType:     eventType,
		description:   description,
		actor:         actor,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Event was created through NewEvent.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}

	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// OrderType returns the order-type tag of the referenced order.
func (e *Event) OrderType() workorder.OrderType {
	return e.orderType
}

// OrderID returns the identifier of the referenced order.
func (e *Event) OrderID() kernel.UUID {
	return e.orderID
}

// EventType returns the free-form event type code.
func (e *Event) EventType() string {
	return e.eventType
}

// Description returns the human-readable event description.
func (e *Event) Description() string {
	return e.description
}

// Actor returns the best-effort identity of the caller.
func (e *Event) Actor() Actor {
	return e.actor
}

// CreatedAt returns the event creation timestamp.
func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}
