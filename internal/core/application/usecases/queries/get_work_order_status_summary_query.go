package queries

import (
	"errors"

	"shopfloor/internal/pkg/guard"
)

var ErrGetWorkOrderStatusSummaryQueryIsNotConstructed = errors.New(
	"GetWorkOrderStatusSummaryQuery must be created via NewGetWorkOrderStatusSummaryQuery constructor",
)

// GetWorkOrderStatusSummaryQuery retrieves per-status order counts across
// all workstation order types. Used by the periodic status report job.
type GetWorkOrderStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWorkOrderStatusSummaryQuery creates a parameterless summary query.
func NewGetWorkOrderStatusSummaryQuery() GetWorkOrderStatusSummaryQuery {
	return GetWorkOrderStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderStatusSummaryQueryIsNotConstructed)
}

// GetWorkOrderStatusSummaryQueryResponse is one (order type, status) bucket.
type GetWorkOrderStatusSummaryQueryResponse struct {
	OrderType string
	Status    string
	Count     int
}
