// Package staffrepo persists staff accounts. Accounts are seeded out of
// band; the application only ever reads them for login.
package staffrepo

import (
	"cakery/internal/core/domain/model/staff"
)

// StaffDTO represents the database structure for staff accounts.
type StaffDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FullName     string
}

// TableName specifies the database table name for staff entities.
func (StaffDTO) TableName() string {
	return "staff"
}

// toDomain converts a database row to a staff aggregate.
func toDomain(dto StaffDTO) (*staff.Staff, error) {
	return staff.RestoreStaff(dto.ID, dto.Username, dto.PasswordHash, dto.FullName)
}
