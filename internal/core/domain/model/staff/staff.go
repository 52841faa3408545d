// Package staff provides the credential record for the people allowed to
// manage orders. The record is read-only from this application's
// perspective: there is no registration flow, accounts are provisioned
// directly in the database.
package staff

import (
	"errors"

	"cakery/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// ErrStaffIsNotConstructed is returned when a Staff instance was not created
// through RestoreStaff.
var ErrStaffIsNotConstructed = errors.New("Staff must be created via RestoreStaff constructor")

// Staff is a persisted user entity holding a username and a salted bcrypt
// password hash.
type Staff struct {
	id           int64
	username     string
	passwordHash string
	fullName     string

	isConstructed bool
}

// RestoreStaff rehydrates a Staff record from persistence.
func RestoreStaff(id int64, username, passwordHash, fullName string) (*Staff, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("password hash")
	}

	return &Staff{
		id:            id,
		username:      username,
		passwordHash:  passwordHash,
		fullName:      fullName,
		isConstructed: true,
	}, nil
}

// Validate ensures the Staff instance was created through RestoreStaff.
func (s *Staff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStaffIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier.
func (s *Staff) ID() int64 {
	return s.id
}

// Username returns the login name.
func (s *Staff) Username() string {
	return s.username
}

// FullName returns the display name.
func (s *Staff) FullName() string {
	return s.fullName
}

// VerifyPassword compares a plaintext password against the stored hash using
// bcrypt's constant-time comparison. Any mismatch is reported as
// ErrInvalidCredentials without further detail.
func (s *Staff) VerifyPassword(plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(plain)); err != nil {
		return errs.ErrInvalidCredentials
	}
	return nil
}
