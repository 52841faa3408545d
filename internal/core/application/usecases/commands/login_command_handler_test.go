package commands_test

import (
	"errors"
	"testing"

	"cakery/internal/core/application/usecases/commands"
	"cakery/internal/core/domain/model/staff"
	"cakery/internal/pkg/errs"
	"cakery/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func storedStaff(t *testing.T, password string) *staff.Staff {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	member, err := staff.RestoreStaff(7, "jane", string(hash), "Jane Dough")
	require.NoError(t, err)
	return member
}

func TestLoginCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewLoginCommand("jane", "secret")

	repo := new(MockStaffRepository)
	repo.On("GetByUsername", ctx, "jane").Return(storedStaff(t, "secret"), nil).Once()

	issuer := new(MockTokenIssuer)
	issuer.On("Issue", token.Identity{UserID: 7, Username: "jane"}).
		Return("signed-token", nil).Once()

	h := commands.NewLoginCommandHandler(repo, issuer)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, int64(7), result.UserID)
	assert.Equal(t, "jane", result.Username)
	assert.Equal(t, "Jane Dough", result.FullName)
	repo.AssertExpectations(t)
	issuer.AssertExpectations(t)
}

func TestLoginCommandHandler_Handle_UnknownUser(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewLoginCommand("ghost", "secret")

	repo := new(MockStaffRepository)
	repo.On("GetByUsername", ctx, "ghost").
		Return(nil, errs.NewObjectNotFoundError("username", "ghost")).Once()

	h := commands.NewLoginCommandHandler(repo, new(MockTokenIssuer))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestLoginCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewLoginCommand("jane", "wrong")

	repo := new(MockStaffRepository)
	repo.On("GetByUsername", ctx, "jane").Return(storedStaff(t, "secret"), nil).Once()

	h := commands.NewLoginCommandHandler(repo, new(MockTokenIssuer))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestLoginCommandHandler_Handle_SameErrorForBothFailures(t *testing.T) {
	ctx := t.Context()

	repo := new(MockStaffRepository)
	repo.On("GetByUsername", ctx, "ghost").
		Return(nil, errs.NewObjectNotFoundError("username", "ghost")).Once()
	repo.On("GetByUsername", ctx, "jane").Return(storedStaff(t, "secret"), nil).Once()

	h := commands.NewLoginCommandHandler(repo, new(MockTokenIssuer))

	unknownCmd, _ := commands.NewLoginCommand("ghost", "secret")
	_, unknownErr := h.Handle(ctx, unknownCmd)

	wrongCmd, _ := commands.NewLoginCommand("jane", "wrong")
	_, wrongErr := h.Handle(ctx, wrongCmd)

	// Callers must not be able to tell an unknown user from a bad password.
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLoginCommandHandler_Handle_StorageError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewLoginCommand("jane", "secret")

	storageErr := errs.NewStorageError(errors.New("connection refused"))
	repo := new(MockStaffRepository)
	repo.On("GetByUsername", ctx, "jane").Return(nil, storageErr).Once()

	h := commands.NewLoginCommandHandler(repo, new(MockTokenIssuer))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrStorage)
	require.NotErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestLoginCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.LoginCommand // not constructed properly

	h := commands.NewLoginCommandHandler(new(MockStaffRepository), new(MockTokenIssuer))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
