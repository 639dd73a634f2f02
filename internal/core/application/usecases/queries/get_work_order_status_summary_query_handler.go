package queries

import (
	"context"

	"shopfloor/internal/core/domain/model/workorder"

	"gorm.io/gorm"
)

// GetWorkOrderStatusSummaryQueryHandler aggregates order counts by type and
// status straight from the database.
type GetWorkOrderStatusSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrderStatusSummaryQueryHandler creates a handler for summary queries.
func NewGetWorkOrderStatusSummaryQueryHandler(db *gorm.DB) GetWorkOrderStatusSummaryQueryHandler {
	return GetWorkOrderStatusSummaryQueryHandler{db: db}
}

// Handle executes the query. Buckets with no orders are omitted; results are
// ordered by type then status for stable output.
func (h GetWorkOrderStatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrderStatusSummaryQuery,
) ([]GetWorkOrderStatusSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summary := make([]GetWorkOrderStatusSummaryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_type,
			status,
			COUNT(*)
		FROM work_orders
		GROUP BY order_type, status
		ORDER BY order_type, status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderType, status, count int

		if err = rows.Scan(&orderType, &status, &count); err != nil {
			return nil, err
		}

		summary = append(summary, GetWorkOrderStatusSummaryQueryResponse{
			OrderType: workorder.OrderType(orderType).String(),
			Status:    workorder.Status(status).String(),
			Count:     count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
