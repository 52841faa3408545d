package queries

import (
	"context"

	"cakery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// MonthlyIncomeReadModel is one (year, month) reporting group over
// delivered orders.
type MonthlyIncomeReadModel struct {
	Year            int
	Month           int
	TotalDeliveries int64
	TotalIncome     float64
}

// GetMonthlyIncomeQueryHandler aggregates income from delivered orders.
// This is a pure read with no side effects.
type GetMonthlyIncomeQueryHandler struct {
	db *gorm.DB
}

// NewGetMonthlyIncomeQueryHandler creates a handler for income reporting.
func NewGetMonthlyIncomeQueryHandler(db *gorm.DB) GetMonthlyIncomeQueryHandler {
	return GetMonthlyIncomeQueryHandler{db: db}
}

// Handle executes the aggregation, returning groups ordered by year
// descending then month descending.
func (h GetMonthlyIncomeQueryHandler) Handle(
	ctx context.Context,
	query GetMonthlyIncomeQuery,
) ([]MonthlyIncomeReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			EXTRACT(YEAR FROM delivery_date)::int AS year,
			EXTRACT(MONTH FROM delivery_date)::int AS month,
			COUNT(*) AS total_deliveries,
			COALESCE(SUM(delivery_fee), 0) AS total_income
		FROM orders
		WHERE status = ?`
	args := []any{order.StatusDelivered.String()}

	if query.Year() != 0 && query.Month() != 0 {
		sql += ` AND EXTRACT(YEAR FROM delivery_date) = ? AND EXTRACT(MONTH FROM delivery_date) = ?`
		args = append(args, query.Year(), query.Month())
	} else if query.Year() != 0 {
		sql += ` AND EXTRACT(YEAR FROM delivery_date) = ?`
		args = append(args, query.Year())
	}

	sql += `
		GROUP BY EXTRACT(YEAR FROM delivery_date), EXTRACT(MONTH FROM delivery_date)
		ORDER BY year DESC, month DESC`

	groups := make([]MonthlyIncomeReadModel, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var group MonthlyIncomeReadModel
		if err = rows.Scan(
			&group.Year,
			&group.Month,
			&group.TotalDeliveries,
			&group.TotalIncome,
		); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
