package queries

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/pkg/guard"
)

var ErrGetControlOrderProgressQueryIsNotConstructed = errors.New(
	"GetControlOrderProgressQuery must be created via NewGetControlOrderProgressQuery constructor",
)

// GetControlOrderProgressQuery retrieves a control order together with the
// completion progress of its child work orders.
type GetControlOrderProgressQuery struct {
	orderType      workorder.OrderType
	controlOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetControlOrderProgressQuery creates a progress query for the given
// control order, counting children of the given type.
func NewGetControlOrderProgressQuery(
	orderType workorder.OrderType,
	controlOrderID kernel.UUID,
) (GetControlOrderProgressQuery, error) {
	if err := orderType.Validate(); err != nil {
		return GetControlOrderProgressQuery{}, err
	}
	if err := controlOrderID.Validate(); err != nil {
		return GetControlOrderProgressQuery{}, err
	}

	return GetControlOrderProgressQuery{
		orderType:      orderType,
		controlOrderID: controlOrderID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetControlOrderProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetControlOrderProgressQueryIsNotConstructed)
}

// OrderType returns the workstation order variant of the children.
func (q GetControlOrderProgressQuery) OrderType() workorder.OrderType {
	return q.orderType
}

// ControlOrderID returns the identifier of the requested control order.
func (q GetControlOrderProgressQuery) ControlOrderID() kernel.UUID {
	return q.controlOrderID
}

// GetControlOrderProgressQueryResponse carries a control order and the
// completion counts of its children.
type GetControlOrderProgressQueryResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	Status          string
	ActualFinish    *time.Time
	TotalOrders     int
	CompletedOrders int
}
