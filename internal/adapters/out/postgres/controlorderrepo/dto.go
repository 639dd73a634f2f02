// Package controlorderrepo provides data transfer objects and mapping
// functions for control order persistence.
package controlorderrepo

import (
	"time"

	"shopfloor/internal/core/domain/model/controlorder"
	"shopfloor/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ControlOrderDTO represents the database structure for persisting control
// order aggregates.
type ControlOrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber  string
	Status       int
	ActualFinish *time.Time
}

// TableName overrides GORM's default naming convention to use "control_orders".
func (ControlOrderDTO) TableName() string {
	return "control_orders"
}

// fromDomain converts a control order aggregate to its database representation.
func fromDomain(co *controlorder.ControlOrder) ControlOrderDTO {
	return ControlOrderDTO{
		ID:           co.ID().Bytes(),
		OrderNumber:  co.OrderNumber(),
		Status:       int(co.Status()),
		ActualFinish: co.ActualFinish(),
	}
}

// toDomain converts a database DTO back to a control order aggregate.
func toDomain(dto ControlOrderDTO) (*controlorder.ControlOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return controlorder.RestoreControlOrder(
		id,
		dto.OrderNumber,
		controlorder.Status(dto.Status),
		dto.ActualFinish,
	)
}
