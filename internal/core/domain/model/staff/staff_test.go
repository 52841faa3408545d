package staff_test

import (
	"testing"

	"cakery/internal/core/domain/model/staff"
	"cakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashOf(t *testing.T, plain string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRestoreStaff(t *testing.T) {
	t.Run("rehydrates a record", func(t *testing.T) {
		s, err := staff.RestoreStaff(3, "jane", hashOf(t, "secret"), "Jane Dough")
		require.NoError(t, err)

		assert.Equal(t, int64(3), s.ID())
		assert.Equal(t, "jane", s.Username())
		assert.Equal(t, "Jane Dough", s.FullName())
		require.NoError(t, s.Validate())
	})

	t.Run("requires a username", func(t *testing.T) {
		_, err := staff.RestoreStaff(3, "", hashOf(t, "secret"), "Jane Dough")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires a password hash", func(t *testing.T) {
		_, err := staff.RestoreStaff(3, "jane", "", "Jane Dough")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestStaff_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var s staff.Staff
		require.ErrorIs(t, s.Validate(), staff.ErrStaffIsNotConstructed)
	})

	t.Run("nil is not constructed", func(t *testing.T) {
		var s *staff.Staff
		require.ErrorIs(t, s.Validate(), staff.ErrStaffIsNotConstructed)
	})
}

func TestStaff_VerifyPassword(t *testing.T) {
	s, err := staff.RestoreStaff(3, "jane", hashOf(t, "secret"), "Jane Dough")
	require.NoError(t, err)

	t.Run("accepts the matching password", func(t *testing.T) {
		require.NoError(t, s.VerifyPassword("secret"))
	})

	t.Run("rejects a wrong password as invalid credentials", func(t *testing.T) {
		require.ErrorIs(t, s.VerifyPassword("wrong"), errs.ErrInvalidCredentials)
	})

	t.Run("rejects an empty password", func(t *testing.T) {
		require.ErrorIs(t, s.VerifyPassword(""), errs.ErrInvalidCredentials)
	})
}
