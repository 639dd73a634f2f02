package controlorderrepo

import (
	"context"
	"errors"

	"shopfloor/internal/core/domain/model/controlorder"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormControlOrderRepository implements ControlOrderRepository using GORM.
type GormControlOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormControlOrderRepository creates a new GORM control order repository.
func NewGormControlOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormControlOrderRepository {
	return &GormControlOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new control order to the database.
func (r *GormControlOrderRepository) Add(ctx context.Context, aggregate *controlorder.ControlOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing control order to the database.
func (r *GormControlOrderRepository) Update(ctx context.Context, aggregate *controlorder.ControlOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ControlOrderDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "ActualFinish").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a control order by ID.
func (r *GormControlOrderRepository) Get(ctx context.Context, id kernel.UUID) (*controlorder.ControlOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ControlOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("controlOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a control order by ID holding a row-level write
// lock (SELECT ... FOR UPDATE) until the enclosing transaction ends. This is
// the serialization point for concurrent completion aggregation: racing
// aggregators queue on the lock and re-observe the committed status.
func (r *GormControlOrderRepository) GetForUpdate(
	ctx context.Context,
	id kernel.UUID,
) (*controlorder.ControlOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ControlOrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("controlOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
