package commands_test

import (
	"testing"

	"cakery/internal/core/application/usecases/commands"
	"cakery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeleteOrderCommand(12)

	repo := new(MockOrderRepository)
	repo.On("Delete", ctx, int64(12)).Return(nil).Once()

	h := commands.NewDeleteOrderCommandHandler(repo)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeleteOrderCommand(99)

	repo := new(MockOrderRepository)
	repo.On("Delete", ctx, int64(99)).
		Return(errs.NewObjectNotFoundError("order", int64(99))).Once()

	h := commands.NewDeleteOrderCommandHandler(repo)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestDeleteOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.DeleteOrderCommand // not constructed properly

	repo := new(MockOrderRepository)
	h := commands.NewDeleteOrderCommandHandler(repo)
	require.Error(t, h.Handle(ctx, cmd))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
