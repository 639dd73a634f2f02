package controlorder

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

var (
	// ErrControlOrderIsNotConstructed is returned when a ControlOrder instance
	// was not created through NewControlOrder or RestoreControlOrder.
	ErrControlOrderIsNotConstructed = errors.New(
		"ControlOrder must be created via NewControlOrder or RestoreControlOrder")
)

// ControlOrder is the parent unit of work spanning one or more workstation
// orders. It owns its children logically (by foreign key, not embedding):
// a control order's lifetime exceeds any single child.
//
// This core mutates a control order in exactly one way: the completion
// aggregator transitions it to Completed once every child workstation
// order has completed. All other mutations belong to external planning.
type ControlOrder struct {
	// id is the unique identifier for the control order
	id kernel.UUID

	// orderNumber is the human-readable control order number
	orderNumber string

	// status represents the current state in the control order lifecycle
	status Status

	// actualFinish is set when the order is auto-completed
	actualFinish *time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewControlOrder creates a new ControlOrder in Pending status.
func NewControlOrder(id kernel.UUID, orderNumber string) (*ControlOrder, error) {
	co := &ControlOrder{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		co.setID(id),
		co.setOrderNumber(orderNumber),
	); err != nil {
		return nil, err
	}

	return co, nil
}

// RestoreControlOrder reconstructs a ControlOrder from persistence.
func RestoreControlOrder(
	id kernel.UUID,
	orderNumber string,
	status Status,
	actualFinish *time.Time,
) (*ControlOrder, error) {
	co, err := NewControlOrder(id, orderNumber)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	co.status = status
	co.actualFinish = actualFinish
	return co, nil
}

// Validate ensures the ControlOrder was properly constructed through a factory method.
func (c *ControlOrder) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrControlOrderIsNotConstructed
	}

	return nil
}

// ID returns the control order's unique identifier.
func (c *ControlOrder) ID() kernel.UUID {
	return c.id
}

// OrderNumber returns the human-readable control order number.
func (c *ControlOrder) OrderNumber() string {
	return c.orderNumber
}

// Status returns the current status of the control order.
func (c *ControlOrder) Status() Status {
	return c.status
}

// ActualFinish returns the auto-completion time.
// Returns nil unless the order is Completed.
func (c *ControlOrder) ActualFinish() *time.Time {
	return c.actualFinish
}

// IsCompleted reports whether the control order has reached its terminal state.
// The aggregator checks this before completing so a duplicate notification
// becomes an observable no-op.
func (c *ControlOrder) IsCompleted() bool {
	return c.status == Completed
}

// Complete marks the control order as completed and records the finish time.
// Completing an already completed order is an invalid transition; callers
// that need idempotency check IsCompleted first.
func (c *ControlOrder) Complete() error {
	newStatus, err := c.status.Complete()
	if err != nil {
		return err
	}

	c.status = newStatus
	now := time.Now().UTC()
	c.actualFinish = &now
	return nil
}

func (c *ControlOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *ControlOrder) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("controlOrderNumber")
	}
	c.orderNumber = orderNumber
	return nil
}
