package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/pkg/guard"
)

var ErrNotifyChildCompletedCommandIsNotConstructed = errors.New(
	"NotifyChildCompletedCommand must be created via NewNotifyChildCompletedCommand constructor",
)

// NotifyChildCompletedCommand signals the completion aggregator that a child
// work order of the given control order has just completed.
type NotifyChildCompletedCommand struct { //nolint:recvcheck //using for validation
	orderType      workorder.OrderType
	controlOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewNotifyChildCompletedCommand creates an aggregation trigger for the
// given control order.
func NewNotifyChildCompletedCommand(
	orderType workorder.OrderType,
	controlOrderID kernel.UUID,
) (NotifyChildCompletedCommand, error) {
	command := NotifyChildCompletedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderType(orderType),
		command.setControlOrderID(controlOrderID),
	); err != nil {
		return NotifyChildCompletedCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyChildCompletedCommand) Validate() error {
	return c.guard.Validate(ErrNotifyChildCompletedCommandIsNotConstructed)
}

// OrderType returns the workstation order variant of the children.
func (c NotifyChildCompletedCommand) OrderType() workorder.OrderType {
	return c.orderType
}

// ControlOrderID returns the parent control order to re-evaluate.
func (c NotifyChildCompletedCommand) ControlOrderID() kernel.UUID {
	return c.controlOrderID
}

func (c *NotifyChildCompletedCommand) setOrderType(orderType workorder.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *NotifyChildCompletedCommand) setControlOrderID(controlOrderID kernel.UUID) error {
	if err := controlOrderID.Validate(); err != nil {
		return err
	}

	c.controlOrderID = controlOrderID
	return nil
}
