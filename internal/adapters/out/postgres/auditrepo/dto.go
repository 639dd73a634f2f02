// Package auditrepo provides data transfer objects and mapping functions for
// audit event persistence. Events are append-only; the repository exposes no
// update or delete operations.
package auditrepo

import (
	"time"

	"shopfloor/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// AuditEventDTO represents the database structure for persisting audit events.
type AuditEventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderType   int
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	EventType   string
	Description string
	UserID      *int64
	UserRole    *string
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming convention to use "audit_events".
func (AuditEventDTO) TableName() string {
	return "audit_events"
}

// fromDomain converts an audit event to its database representation.
func fromDomain(event *audit.Event) AuditEventDTO {
	return AuditEventDTO{
		ID:          event.ID().Bytes(),
		OrderType:   int(event.OrderType()),
		OrderID:     event.OrderID().Bytes(),
		EventType:   event.EventType(),
		Description: event.Description(),
		UserID:      event.Actor().UserID(),
		UserRole:    event.Actor().UserRole(),
		CreatedAt:   event.CreatedAt(),
	}
}
