package ports

import (
	"context"

	"github.com/google/uuid"
)

// Event names emitted to the external automation service.
const (
	// EventOrderCreated fires after a new order is durably persisted.
	EventOrderCreated = "order_created"

	// EventStatusUpdated fires after an order's status write commits.
	EventStatusUpdated = "status_updated"

	// EventDeliveryReminder fires from the daily reminder job for each of
	// tomorrow's confirmed orders.
	EventDeliveryReminder = "delivery_reminder"
)

// NotificationEvent is an ephemeral outbound signal about an order. It is
// produced and dispatched immediately, never persisted, queued or retried.
type NotificationEvent struct {
	// ID lets downstream automation deduplicate deliveries.
	ID uuid.UUID

	// Name is one of the Event* constants.
	Name string

	// OrderID identifies the order the event concerns.
	OrderID int64

	// Payload is a flat snapshot of the relevant order fields at the time
	// the event was produced.
	Payload map[string]any
}

// NewNotificationEvent creates an event with a fresh identifier.
func NewNotificationEvent(name string, orderID int64, payload map[string]any) NotificationEvent {
	return NotificationEvent{
		ID:      uuid.New(),
		Name:    name,
		OrderID: orderID,
		Payload: payload,
	}
}

// EventNotifier dispatches notification events to the configured automation
// endpoint. Implementations must be best-effort: a dispatch failure is an
// error for the caller to log, never a reason to fail the triggering
// operation, which is already committed by the time Notify runs.
type EventNotifier interface {
	Notify(ctx context.Context, event NotificationEvent) error
}
