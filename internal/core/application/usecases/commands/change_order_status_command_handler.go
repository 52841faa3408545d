package commands

import (
	"context"
	"log/slog"

	"cakery/internal/core/domain/model/order"
	"cakery/internal/core/ports"
)

// ChangeOrderStatusCommandHandler performs status transitions. The workflow
// is deliberately permissive: any valid status may be written over any
// other, with no transition graph.
//
// The status_updated event embeds the order snapshot taken before the write,
// so the embedded order still shows the previous status. Downstream
// automation was built against that shape, so it is kept as-is.
type ChangeOrderStatusCommandHandler struct {
	orderRepository ports.OrderRepository
	notifier        ports.EventNotifier
	logger          *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status
// transitions.
func NewChangeOrderStatusCommandHandler(
	orderRepository ports.OrderRepository,
	notifier ports.EventNotifier,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		orderRepository: orderRepository,
		notifier:        notifier,
		logger:          logger.With("component", "change_order_status_handler"),
	}
}

// Handle fetches the order, persists the new status, and emits the
// best-effort status_updated event. A missing order fails with an
// object-not-found error before anything is written.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	current, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	snapshot := orderSnapshot(current)

	if err = h.orderRepository.UpdateStatus(ctx, cmd.OrderID(), cmd.Status()); err != nil {
		return err
	}

	event := ports.NewNotificationEvent(ports.EventStatusUpdated, cmd.OrderID(), map[string]any{
		"status": cmd.Status().String(),
		"order":  snapshot,
	})
	if err = h.notifier.Notify(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "status_updated notification failed",
			"order_id", cmd.OrderID(), "status", cmd.Status().String(), "error", err)
	}

	return nil
}

// orderSnapshot flattens an order into the payload shape the automation
// service consumes.
func orderSnapshot(o *order.Order) map[string]any {
	return map[string]any{
		"id":               o.ID(),
		"recipient_name":   o.RecipientName(),
		"phone":            o.Phone(),
		"address":          o.Address(),
		"cake_description": o.CakeDescription(),
		"delivery_fee":     o.DeliveryFee(),
		"delivery_date":    o.DeliveryDate().Format(dateLayout),
		"delivery_time":    o.DeliveryTime(),
		"collection_time":  o.CollectionTime(),
		"notes":            o.Notes(),
		"status":           o.Status().String(),
	}
}
