package materialrepo

import (
	"context"
	"errors"

	"factoryops/internal/adapters/out/postgres/conflict"
	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/material"
	"factoryops/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMaterialRepository implements MaterialRepository using GORM.
type GormMaterialRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMaterialRepository creates a new GORM material repository.
func NewGormMaterialRepository(db *gorm.DB, tracker aggregateTracker) *GormMaterialRepository {
	return &GormMaterialRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new material to the database.
func (r *GormMaterialRepository) Add(ctx context.Context, aggregate *material.Material) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return conflict.Translate("add material", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing material to the database.
func (r *GormMaterialRepository) Update(ctx context.Context, aggregate *material.Material) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MaterialDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "Warehouse", "Location", "Unit", "Quantity").
		Updates(&dto)
	if result.Error != nil {
		return conflict.Translate("update material", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a material by ID.
func (r *GormMaterialRepository) Get(ctx context.Context, id kernel.UUID) (*material.Material, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a material by ID holding a row-level write lock
// until the transaction ends, serializing concurrent stock mutations.
func (r *GormMaterialRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*material.Material, error) {
	return r.get(ctx, id, true)
}

func (r *GormMaterialRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*material.Material, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto MaterialDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("material", id.String())
		}
		return nil, conflict.Translate("get material", err)
	}

	return toDomain(dto)
}

// Delete removes the material.
func (r *GormMaterialRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MaterialDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return conflict.Translate("delete material", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("material", id.String())
	}

	return nil
}
