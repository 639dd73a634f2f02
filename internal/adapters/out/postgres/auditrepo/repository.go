package auditrepo

import (
	"context"

	"shopfloor/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormAuditEventRepository implements AuditEventRepository using GORM.
// The audit trail is append-only, so Add is the whole surface.
type GormAuditEventRepository struct {
	db *gorm.DB
}

// NewGormAuditEventRepository creates a new GORM audit event repository.
func NewGormAuditEventRepository(db *gorm.DB) *GormAuditEventRepository {
	return &GormAuditEventRepository{db: db}
}

// Add appends an audit event.
func (r *GormAuditEventRepository) Add(ctx context.Context, event *audit.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}
