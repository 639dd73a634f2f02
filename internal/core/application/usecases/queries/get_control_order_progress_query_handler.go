package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/controlorder"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"
	"shopfloor/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetControlOrderProgressQueryHandler reads a control order and aggregates
// its child completion counts in one round trip.
type GetControlOrderProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetControlOrderProgressQueryHandler creates a handler for progress queries.
func NewGetControlOrderProgressQueryHandler(db *gorm.DB) GetControlOrderProgressQueryHandler {
	return GetControlOrderProgressQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the control
// order does not exist.
func (h GetControlOrderProgressQueryHandler) Handle(
	ctx context.Context,
	query GetControlOrderProgressQuery,
) (GetControlOrderProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetControlOrderProgressQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			co.id,
			co.order_number,
			co.status,
			co.actual_finish,
			COUNT(wo.id),
			COUNT(wo.id) FILTER (WHERE wo.status = ?)
		FROM control_orders co
		LEFT JOIN work_orders wo
			ON wo.control_order_id = co.id AND wo.order_type = ?
		WHERE co.id = ?
		GROUP BY co.id, co.order_number, co.status, co.actual_finish
	`, int(workorder.Completed), int(query.OrderType()), query.ControlOrderID().Bytes()).Row()

	var (
		id           uuid.UUID
		status       int
		actualFinish *time.Time
		resp         GetControlOrderProgressQueryResponse
	)

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&status,
		&actualFinish,
		&resp.TotalOrders,
		&resp.CompletedOrders,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetControlOrderProgressQueryResponse{},
				errs.NewObjectNotFoundError("controlOrder", query.ControlOrderID().String())
		}
		return GetControlOrderProgressQueryResponse{}, err
	}

	controlOrderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetControlOrderProgressQueryResponse{}, err
	}

	resp.ID = controlOrderID
	resp.Status = controlorder.Status(status).String()
	resp.ActualFinish = actualFinish
	return resp, nil
}
