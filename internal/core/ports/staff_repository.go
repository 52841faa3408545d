package ports

import (
	"context"

	"cakery/internal/core/domain/model/staff"
)

// StaffRepository defines read-only access to staff credential records.
// Accounts are provisioned outside this application.
type StaffRepository interface {
	// GetByUsername retrieves the credential record matching the exact
	// username. Returns an object-not-found error when no such user exists;
	// the login flow converts that into invalid-credentials so callers
	// cannot probe for usernames.
	GetByUsername(ctx context.Context, username string) (*staff.Staff, error)
}
