package queries

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/pkg/guard"
)

var ErrGetWorkOrderQueryIsNotConstructed = errors.New(
	"GetWorkOrderQuery must be created via NewGetWorkOrderQuery constructor",
)

// GetWorkOrderQuery retrieves the full detail of a single workstation order.
type GetWorkOrderQuery struct {
	orderType workorder.OrderType
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkOrderQuery creates a query for one work order of the given type.
func NewGetWorkOrderQuery(orderType workorder.OrderType, orderID kernel.UUID) (GetWorkOrderQuery, error) {
	if err := orderType.Validate(); err != nil {
		return GetWorkOrderQuery{}, err
	}
	if err := orderID.Validate(); err != nil {
		return GetWorkOrderQuery{}, err
	}

	return GetWorkOrderQuery{
		orderType: orderType,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderQueryIsNotConstructed)
}

// OrderType returns the workstation order variant.
func (q GetWorkOrderQuery) OrderType() workorder.OrderType {
	return q.orderType
}

// OrderID returns the identifier of the requested order.
func (q GetWorkOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetWorkOrderQueryResponse carries the read-model view of one work order.
type GetWorkOrderQueryResponse struct {
	ID             kernel.UUID
	OrderNumber    string
	WorkstationID  string
	ControlOrderID kernel.UUID
	Status         string
	ItemID         string
	ItemName       string
	Quantity       int
	PlannedStart   *time.Time
	ActualStart    *time.Time
	ActualFinish   *time.Time
	SupplyOrderID  *int64
}
