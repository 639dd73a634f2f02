package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/audit"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/pkg/guard"
)

var ErrHaltWorkOrderCommandIsNotConstructed = errors.New(
	"HaltWorkOrderCommand must be created via NewHaltWorkOrderCommand constructor",
)

// HaltWorkOrderCommand represents a request to interrupt production of a
// work order that is currently InProgress.
type HaltWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderType workorder.OrderType
	orderID   kernel.UUID
	actor     audit.Actor

	guard guard.ConstructorGuard
}

// NewHaltWorkOrderCommand creates a command to halt a work order of the given type.
func NewHaltWorkOrderCommand(
	orderType workorder.OrderType,
	orderID kernel.UUID,
	actor audit.Actor,
) (HaltWorkOrderCommand, error) {
	command := HaltWorkOrderCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderType(orderType),
		command.setOrderID(orderID),
	); err != nil {
		return HaltWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c HaltWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrHaltWorkOrderCommandIsNotConstructed)
}

// OrderType returns the workstation order variant.
func (c HaltWorkOrderCommand) OrderType() workorder.OrderType {
	return c.orderType
}

// OrderID returns the unique identifier of the order to halt.
func (c HaltWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the caller's best-effort identity.
func (c HaltWorkOrderCommand) Actor() audit.Actor {
	return c.actor
}

func (c *HaltWorkOrderCommand) setOrderType(orderType workorder.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *HaltWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
