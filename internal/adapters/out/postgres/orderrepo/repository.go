package orderrepo

import (
	"context"
	"errors"

	"factoryops/internal/adapters/out/postgres/conflict"
	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/order"
	"factoryops/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its requirement lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return conflict.Translate("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Requirement lines are
// immutable after creation and are left untouched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("EmployeeID", "ProductName", "Quantity", "Status").
		Updates(&dto)
	if result.Error != nil {
		return conflict.Translate("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including its requirement lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an order by ID holding a row-level write lock until
// the transaction ends. The lock covers the order row only; requirement
// lines never change after creation.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "orders"}})
	}

	var dto OrderDTO
	if err := tx.Preload("Requirements").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, conflict.Translate("get order", err)
	}

	return toDomain(dto)
}

// Delete removes the order; requirement lines cascade at the database level.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&RequirementDTO{}, "order_id = ?", id.Bytes()).Error; err != nil {
		return conflict.Translate("delete order requirements", err)
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return conflict.Translate("delete order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// GetAcceptedByEmployee retrieves the employee's current accepted order.
func (r *GormOrderRepository) GetAcceptedByEmployee(ctx context.Context, employeeID kernel.UUID) (*order.Order, error) {
	if err := employeeID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Requirements").
		First(&dto, "employee_id = ? AND status = ?", employeeID.Bytes(), int(order.Accepted)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("accepted order for employee", employeeID.String())
		}
		return nil, conflict.Translate("get accepted order", err)
	}

	return toDomain(dto)
}

// ExistsNonTerminalWithMaterial reports whether any unfinished order requires
// the material.
func (r *GormOrderRepository) ExistsNonTerminalWithMaterial(ctx context.Context, materialID kernel.UUID) (bool, error) {
	if err := materialID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&RequirementDTO{}).
		Joins("JOIN orders ON orders.id = order_requirements.order_id").
		Where("order_requirements.material_id = ? AND orders.status != ?", materialID.Bytes(), int(order.Completed)).
		Count(&count).Error
	if err != nil {
		return false, conflict.Translate("count orders with material", err)
	}

	return count > 0, nil
}

// ExistsNonTerminalWithEmployee reports whether the employee is attached to
// any unfinished order.
func (r *GormOrderRepository) ExistsNonTerminalWithEmployee(ctx context.Context, employeeID kernel.UUID) (bool, error) {
	if err := employeeID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("employee_id = ? AND status != ?", employeeID.Bytes(), int(order.Completed)).
		Count(&count).Error
	if err != nil {
		return false, conflict.Translate("count orders with employee", err)
	}

	return count > 0, nil
}
