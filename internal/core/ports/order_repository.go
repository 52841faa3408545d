package ports

import (
	"context"

	"cakery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every method maps to a single atomic statement; no multi-statement
// transactions are used.
type OrderRepository interface {
	// Add persists a new order and assigns its identifier.
	// The order must be valid and not yet persisted.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns an object-not-found error when no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// ApplyUpdate writes exactly the fields named in the document, leaving
	// every other column untouched. The document is already validated
	// against the order's allow-list of mutable fields.
	ApplyUpdate(ctx context.Context, id int64, doc order.UpdateDocument) error

	// UpdateStatus persists a status change for the given order.
	UpdateStatus(ctx context.Context, id int64, status order.Status) error

	// Delete removes the order by identifier.
	// Returns an object-not-found error when no row was affected.
	Delete(ctx context.Context, id int64) error
}
