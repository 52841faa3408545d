package queries

import (
	"errors"

	"cakery/internal/pkg/guard"
)

var ErrGetTodayOrdersQueryIsNotConstructed = errors.New(
	"GetTodayOrdersQuery must be created via NewGetTodayOrdersQuery constructor",
)

// GetTodayOrdersQuery retrieves the orders being delivered today, in
// delivery-time order, so the team can work through the day's schedule.
type GetTodayOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTodayOrdersQuery creates a query for today's delivery schedule.
func NewGetTodayOrdersQuery() GetTodayOrdersQuery {
	return GetTodayOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTodayOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetTodayOrdersQueryIsNotConstructed)
}
