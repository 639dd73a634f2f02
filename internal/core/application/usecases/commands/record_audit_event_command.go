package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/audit"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

var ErrRecordAuditEventCommandIsNotConstructed = errors.New(
	"RecordAuditEventCommand must be created via NewRecordAuditEventCommand constructor",
)

// RecordAuditEventCommand represents a request to append an entry to the
// order audit trail and fan it out to the registered webhook subscribers.
type RecordAuditEventCommand struct { //nolint:recvcheck //using for validation
	orderType   workorder.OrderType
	orderID     kernel.UUID
	eventType   string
	description string
	actor       audit.Actor

	guard guard.ConstructorGuard
}

// NewRecordAuditEventCommand creates an audit recording command.
func NewRecordAuditEventCommand(
	orderType workorder.OrderType,
	orderID kernel.UUID,
	eventType string,
	description string,
	actor audit.Actor,
) (RecordAuditEventCommand, error) {
	command := RecordAuditEventCommand{
		description: description,
		actor:       actor,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderType(orderType),
		command.setOrderID(orderID),
		command.setEventType(eventType),
	); err != nil {
		return RecordAuditEventCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordAuditEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordAuditEventCommandIsNotConstructed)
}

// OrderType returns the order variant the event relates to.
func (c RecordAuditEventCommand) OrderType() workorder.OrderType {
	return c.orderType
}

// OrderID returns the order the event relates to.
func (c RecordAuditEventCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EventType returns the kind of lifecycle change being recorded.
func (c RecordAuditEventCommand) EventType() string {
	return c.eventType
}

// Description returns the human-readable event description.
func (c RecordAuditEventCommand) Description() string {
	return c.description
}

// Actor returns the caller's best-effort identity.
func (c RecordAuditEventCommand) Actor() audit.Actor {
	return c.actor
}

func (c *RecordAuditEventCommand) setOrderType(orderType workorder.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *RecordAuditEventCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordAuditEventCommand) setEventType(eventType string) error {
	if eventType == "" {
		return errs.NewValueIsRequiredError("eventType")
	}

	c.eventType = eventType
	return nil
}
