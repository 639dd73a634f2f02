package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/audit"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/pkg/guard"
)

var ErrStartWorkOrderCommandIsNotConstructed = errors.New(
	"StartWorkOrderCommand must be created via NewStartWorkOrderCommand constructor",
)

// StartWorkOrderCommand represents a request to start production of a
// workstation order. Starting is valid from Pending and WaitingForParts.
//
// Example:
//
//	cmd, err := NewStartWorkOrderCommand(workorder.TypeGearAssembly, orderID, actor)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start work order: %w", err)
//	}
type StartWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderType workorder.OrderType
	orderID   kernel.UUID
	actor     audit.Actor

	guard guard.ConstructorGuard
}

// NewStartWorkOrderCommand creates a command to start a work order of the
// given type. The actor carries the caller's best-effort identity for the
// audit trail.
func NewStartWorkOrderCommand(
	orderType workorder.OrderType,
	orderID kernel.UUID,
	actor audit.Actor,
) (StartWorkOrderCommand, error) {
	command := StartWorkOrderCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderType(orderType),
		command.setOrderID(orderID),
	); err != nil {
		return StartWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartWorkOrderCommandIsNotConstructed)
}

// OrderType returns the workstation order variant.
func (c StartWorkOrderCommand) OrderType() workorder.OrderType {
	return c.orderType
}

// OrderID returns the unique identifier of the order to start.
func (c StartWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the caller's best-effort identity.
func (c StartWorkOrderCommand) Actor() audit.Actor {
	return c.actor
}

func (c *StartWorkOrderCommand) setOrderType(orderType workorder.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *StartWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
