package commands

import (
	"errors"
	"fmt"

	"shopfloor/internal/core/domain/model/audit"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

var ErrMarkWaitingForPartsCommandIsNotConstructed = errors.New(
	"MarkWaitingForPartsCommand must be created via NewMarkWaitingForPartsCommand constructor",
)

// MarkWaitingForPartsCommand represents a request to park a work order
// until a supply order delivers missing input parts. The operation carries
// no status precondition and is callable from any state.
type MarkWaitingForPartsCommand struct { //nolint:recvcheck //using for validation
	orderType     workorder.OrderType
	orderID       kernel.UUID
	supplyOrderID int64
	actor         audit.Actor

	guard guard.ConstructorGuard
}

// NewMarkWaitingForPartsCommand creates a command linking the order to the
// supply order it waits on.
func NewMarkWaitingForPartsCommand(
	orderType workorder.OrderType,
	orderID kernel.UUID,
	supplyOrderID int64,
	actor audit.Actor,
) (MarkWaitingForPartsCommand, error) {
	command := MarkWaitingForPartsCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderType(orderType),
		command.setOrderID(orderID),
		command.setSupplyOrderID(supplyOrderID),
	); err != nil {
		return MarkWaitingForPartsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkWaitingForPartsCommand) Validate() error {
	return c.guard.Validate(ErrMarkWaitingForPartsCommandIsNotConstructed)
}

// OrderType returns the workstation order variant.
func (c MarkWaitingForPartsCommand) OrderType() workorder.OrderType {
	return c.orderType
}

// OrderID returns the unique identifier of the order to park.
func (c MarkWaitingForPartsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SupplyOrderID returns the supply order the work order waits on.
func (c MarkWaitingForPartsCommand) SupplyOrderID() int64 {
	return c.supplyOrderID
}

// Actor returns the caller's best-effort identity.
func (c MarkWaitingForPartsCommand) Actor() audit.Actor {
	return c.actor
}

func (c *MarkWaitingForPartsCommand) setOrderType(orderType workorder.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *MarkWaitingForPartsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkWaitingForPartsCommand) setSupplyOrderID(supplyOrderID int64) error {
	if supplyOrderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("supplyOrderId",
			fmt.Errorf("%d is not greater than 0", supplyOrderID))
	}

	c.supplyOrderID = supplyOrderID
	return nil
}
