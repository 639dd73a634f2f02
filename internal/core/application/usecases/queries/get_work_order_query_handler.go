package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkOrderQueryHandler reads one work order directly from the database,
// bypassing the aggregate.
type GetWorkOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrderQueryHandler creates a handler for single work order reads.
func NewGetWorkOrderQueryHandler(db *gorm.DB) GetWorkOrderQueryHandler {
	return GetWorkOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order of
// the requested type exists under the given id.
func (h GetWorkOrderQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrderQuery,
) (GetWorkOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			workstation_id,
			control_order_id,
			status,
			item_id,
			item_name,
			quantity,
			planned_start,
			actual_start,
			actual_finish,
			supply_order_id
		FROM work_orders
		WHERE order_type = ? AND id = ?
	`, int(query.OrderType()), query.OrderID().Bytes()).Row()

	var (
		id             uuid.UUID
		controlOrderID uuid.UUID
		status         int
		resp           GetWorkOrderQueryResponse
		plannedStart   *time.Time
		actualStart    *time.Time
		actualFinish   *time.Time
		supplyOrderID  *int64
	)

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&resp.WorkstationID,
		&controlOrderID,
		&status,
		&resp.ItemID,
		&resp.ItemName,
		&resp.Quantity,
		&plannedStart,
		&actualStart,
		&actualFinish,
		&supplyOrderID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetWorkOrderQueryResponse{}, errs.NewObjectNotFoundError("workOrder", query.OrderID().String())
		}
		return GetWorkOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetWorkOrderQueryResponse{}, err
	}
	parentID, err := kernel.UUIDFromBytes(controlOrderID[:])
	if err != nil {
		return GetWorkOrderQueryResponse{}, err
	}

	resp.ID = orderID
	resp.ControlOrderID = parentID
	resp.Status = workorder.Status(status).String()
	resp.PlannedStart = plannedStart
	resp.ActualStart = actualStart
	resp.ActualFinish = actualFinish
	resp.SupplyOrderID = supplyOrderID
	return resp, nil
}
