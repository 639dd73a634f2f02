package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/audit"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/pkg/guard"
)

var ErrResumeWorkOrderCommandIsNotConstructed = errors.New(
	"ResumeWorkOrderCommand must be created via NewResumeWorkOrderCommand constructor",
)

// ResumeWorkOrderCommand represents a request to continue production of a
// halted work order.
type ResumeWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderType workorder.OrderType
	orderID   kernel.UUID
	actor     audit.Actor

	guard guard.ConstructorGuard
}

// NewResumeWorkOrderCommand creates a command to resume a work order of the given type.
func NewResumeWorkOrderCommand(
	orderType workorder.OrderType,
	orderID kernel.UUID,
	actor audit.Actor,
) (ResumeWorkOrderCommand, error) {
	command := ResumeWorkOrderCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderType(orderType),
		command.setOrderID(orderID),
	); err != nil {
		return ResumeWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrResumeWorkOrderCommandIsNotConstructed)
}

// OrderType returns the workstation order variant.
func (c ResumeWorkOrderCommand) OrderType() workorder.OrderType {
	return c.orderType
}

// OrderID returns the unique identifier of the order to resume.
func (c ResumeWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the caller's best-effort identity.
func (c ResumeWorkOrderCommand) Actor() audit.Actor {
	return c.actor
}

func (c *ResumeWorkOrderCommand) setOrderType(orderType workorder.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *ResumeWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
