// Package workorderrepo provides data transfer objects and mapping functions
// for work order persistence. All workstation order variants share one table,
// discriminated by the order_type column; repository reads are always scoped
// by (order_type, id) so the two order populations stay independent.
package workorderrepo

import (
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/workorder"

	"github.com/google/uuid"
)

// WorkOrderDTO represents the database structure for persisting work order
// aggregates.
type WorkOrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderType      int       `gorm:"index:idx_work_orders_type_control"`
	OrderNumber    string
	WorkstationID  string
	ControlOrderID uuid.UUID `gorm:"type:uuid;index:idx_work_orders_type_control"`
	Status         int
	ItemID         string
	ItemName       string
	Quantity       int
	PlannedStart   *time.Time
	ActualStart    *time.Time
	ActualFinish   *time.Time
	SupplyOrderID  *int64
}

// TableName overrides GORM's default naming convention to use "work_orders".
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// fromDomain converts a work order aggregate to its database representation.
func fromDomain(wo *workorder.WorkOrder) WorkOrderDTO {
	return WorkOrderDTO{
		ID:             wo.ID().Bytes(),
		OrderType:      int(wo.OrderType()),
		OrderNumber:    wo.OrderNumber(),
		WorkstationID:  wo.WorkstationID(),
		ControlOrderID: wo.ControlOrderID().Bytes(),
		Status:         int(wo.Status()),
		ItemID:         wo.ItemID(),
		ItemName:       wo.ItemName(),
		Quantity:       wo.Quantity(),
		PlannedStart:   wo.PlannedStart(),
		ActualStart:    wo.ActualStart(),
		ActualFinish:   wo.ActualFinish(),
		SupplyOrderID:  wo.SupplyOrderID(),
	}
}

// toDomain converts a database DTO back to a work order aggregate using
// RestoreWorkOrder, re-applying all invariant validation.
func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	controlOrderID, err := kernel.UUIDFromBytes(dto.ControlOrderID[:])
	if err != nil {
		return nil, err
	}

	return workorder.RestoreWorkOrder(
		id,
		workorder.OrderType(dto.OrderType),
		dto.OrderNumber,
		dto.WorkstationID,
		controlOrderID,
		dto.ItemID,
		dto.ItemName,
		dto.Quantity,
		workorder.Status(dto.Status),
		dto.PlannedStart,
		dto.ActualStart,
		dto.ActualFinish,
		dto.SupplyOrderID,
	)
}
