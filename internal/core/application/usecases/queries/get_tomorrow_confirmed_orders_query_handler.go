package queries

import (
	"context"

	"cakery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetTomorrowConfirmedOrdersQueryHandler lists orders whose delivery date is
// the day after the current date and whose status is confirmed.
type GetTomorrowConfirmedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetTomorrowConfirmedOrdersQueryHandler creates a handler for tomorrow's
// confirmed orders.
func NewGetTomorrowConfirmedOrdersQueryHandler(db *gorm.DB) GetTomorrowConfirmedOrdersQueryHandler {
	return GetTomorrowConfirmedOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetTomorrowConfirmedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetTomorrowConfirmedOrdersQuery,
) ([]OrderReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderReadModel, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE delivery_date = CURRENT_DATE + INTERVAL '1 day'
		  AND status = ?
	`, order.StatusConfirmed.String()).Scan(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}
