package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetTodayOrdersQueryHandler lists orders whose delivery date is the current
// date, ordered by delivery time ascending.
type GetTodayOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetTodayOrdersQueryHandler creates a handler for today's orders.
func NewGetTodayOrdersQueryHandler(db *gorm.DB) GetTodayOrdersQueryHandler {
	return GetTodayOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetTodayOrdersQueryHandler) Handle(ctx context.Context, query GetTodayOrdersQuery) ([]OrderReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderReadModel, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE delivery_date = CURRENT_DATE
		ORDER BY delivery_time
	`).Scan(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}
