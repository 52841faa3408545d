package orderrepo

import (
	"context"
	"errors"

	"cakery/internal/core/domain/model/order"
	"cakery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM. Every
// method is a single statement; storage faults are wrapped as StorageError
// with the original diagnostic preserved.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts a new order and writes the assigned id back into the
// aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError(err)
	}

	aggregate.SetID(dto.ID)
	return nil
}

// Get retrieves an order by id.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, errs.NewStorageError(err)
	}

	return toDomain(dto)
}

// ApplyUpdate writes exactly the columns named in the document. Updating an
// id that matches no row affects nothing and is not an error.
func (r *GormOrderRepository) ApplyUpdate(ctx context.Context, id int64, doc order.UpdateDocument) error {
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Updates(doc.Fields())
	if result.Error != nil {
		return errs.NewStorageError(result.Error)
	}

	return nil
}

// UpdateStatus persists a status change.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id int64, status order.Status) error {
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return errs.NewStorageError(result.Error)
	}

	return nil
}

// Delete removes an order. Zero affected rows is reported as not found.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, id)
	if result.Error != nil {
		return errs.NewStorageError(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}

	return nil
}
