package commands

import (
	"context"
	"log/slog"

	"cakery/internal/core/domain/model/order"
	"cakery/internal/core/ports"
)

// dateLayout is the wire format for calendar dates in notification payloads.
const dateLayout = "2006-01-02"

// CreateOrderCommandHandler persists new orders and emits the order_created
// event. The notification is best-effort: the order is durable before
// dispatch is attempted, and a dispatch failure is logged without affecting
// the command's outcome.
type CreateOrderCommandHandler struct {
	orderRepository ports.OrderRepository
	notifier        ports.EventNotifier
	logger          *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	orderRepository ports.OrderRepository,
	notifier ports.EventNotifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepository: orderRepository,
		notifier:        notifier,
		logger:          logger.With("component", "create_order_handler"),
	}
}

// Handle creates the order in pending status and returns the assigned id.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(
		cmd.RecipientName(),
		cmd.Phone(),
		cmd.Address(),
		cmd.CakeDescription(),
		cmd.DeliveryFee(),
		cmd.DeliveryDate(),
		cmd.DeliveryTime(),
		cmd.CollectionTime(),
		cmd.Notes(),
	)
	if err != nil {
		return 0, err
	}

	if err = h.orderRepository.Add(ctx, newOrder); err != nil {
		return 0, err
	}

	event := ports.NewNotificationEvent(ports.EventOrderCreated, newOrder.ID(), map[string]any{
		"recipient_name":   newOrder.RecipientName(),
		"phone":            newOrder.Phone(),
		"delivery_date":    newOrder.DeliveryDate().Format(dateLayout),
		"delivery_time":    newOrder.DeliveryTime(),
		"cake_description": newOrder.CakeDescription(),
	})
	if err = h.notifier.Notify(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "order_created notification failed",
			"order_id", newOrder.ID(), "error", err)
	}

	return newOrder.ID(), nil
}
