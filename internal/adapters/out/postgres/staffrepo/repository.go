package staffrepo

import (
	"context"
	"errors"

	"cakery/internal/core/domain/model/staff"
	"cakery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements ports.StaffRepository using GORM.
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// GetByUsername looks up a staff account by its username.
func (r *GormStaffRepository) GetByUsername(ctx context.Context, username string) (*staff.Staff, error) {
	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, errs.NewStorageError(err)
	}

	return toDomain(dto)
}
