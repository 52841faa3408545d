package queries

import (
	"context"

	"cakery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler fetches a single order row.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order lookups.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup. A missing row fails with an object-not-found
// error.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (OrderReadModel, error) {
	if err := query.Validate(); err != nil {
		return OrderReadModel{}, err
	}

	var orderRow OrderReadModel
	result := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Scan(&orderRow)
	if result.Error != nil {
		return OrderReadModel{}, result.Error
	}

	if result.RowsAffected == 0 {
		return OrderReadModel{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return orderRow, nil
}
