package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/audit"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/pkg/guard"
)

var ErrCompleteWorkOrderCommandIsNotConstructed = errors.New(
	"CompleteWorkOrderCommand must be created via NewCompleteWorkOrderCommand constructor",
)

// CompleteWorkOrderCommand represents a request to finish production of a
// workstation order. Completion credits the produced output to the
// downstream supermarket location and signals the completion aggregator.
type CompleteWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderType workorder.OrderType
	orderID   kernel.UUID
	actor     audit.Actor

	guard guard.ConstructorGuard
}

// NewCompleteWorkOrderCommand creates a command to complete a work order of
// the given type.
func NewCompleteWorkOrderCommand(
	orderType workorder.OrderType,
	orderID kernel.UUID,
	actor audit.Actor,
) (CompleteWorkOrderCommand, error) {
	command := CompleteWorkOrderCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderType(orderType),
		command.setOrderID(orderID),
	); err != nil {
		return CompleteWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteWorkOrderCommandIsNotConstructed)
}

// OrderType returns the workstation order variant.
func (c CompleteWorkOrderCommand) OrderType() workorder.OrderType {
	return c.orderType
}

// OrderID returns the unique identifier of the order to complete.
func (c CompleteWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the caller's best-effort identity.
func (c CompleteWorkOrderCommand) Actor() audit.Actor {
	return c.actor
}

func (c *CompleteWorkOrderCommand) setOrderType(orderType workorder.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CompleteWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
