package commands

import (
	"context"

	"cakery/internal/core/ports"
)

// UpdateOrderCommandHandler applies partial updates to existing orders.
// Only the fields named in the document are written; everything else keeps
// its prior value. Updating an id that does not exist is not an error: the
// statement simply affects no rows.
type UpdateOrderCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewUpdateOrderCommandHandler creates a handler for partial order updates.
func NewUpdateOrderCommandHandler(orderRepository ports.OrderRepository) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle persists the partial update as a single statement.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orderRepository.ApplyUpdate(ctx, cmd.OrderID(), cmd.Document())
}
