package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists every order ordered by delivery date
// descending.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the full order list.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderReadModel, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY delivery_date DESC
	`).Scan(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}
