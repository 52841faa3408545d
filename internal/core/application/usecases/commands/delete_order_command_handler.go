package commands

import (
	"context"

	"cakery/internal/core/ports"
)

// DeleteOrderCommandHandler removes orders by id.
type DeleteOrderCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(orderRepository ports.OrderRepository) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle deletes the order. The repository reports an object-not-found error
// when no row was affected.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orderRepository.Delete(ctx, cmd.OrderID())
}
