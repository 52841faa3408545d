package commands_test

import (
	"testing"

	"cakery/internal/core/application/usecases/commands"
	"cakery/internal/core/domain/model/order"
	"cakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notesDocument(t *testing.T) order.UpdateDocument {
	t.Helper()
	doc, err := order.NewUpdateDocument(map[string]any{"notes": "foo"})
	require.NoError(t, err)
	return doc
}

func TestNewUpdateOrderCommand(t *testing.T) {
	t.Run("creates a valid command", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderCommand(12, notesDocument(t))
		require.NoError(t, err)

		assert.Equal(t, int64(12), cmd.OrderID())
		assert.Equal(t, map[string]any{"notes": "foo"}, cmd.Document().Fields())
		require.NoError(t, cmd.Validate())
	})

	t.Run("rejects a non-positive id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(0, notesDocument(t))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects a zero-value document", func(t *testing.T) {
		var doc order.UpdateDocument
		_, err := commands.NewUpdateOrderCommand(12, doc)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "no fields to update")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.UpdateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderCommandIsNotConstructed)
	})
}
