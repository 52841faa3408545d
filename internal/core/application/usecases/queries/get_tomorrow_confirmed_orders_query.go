package queries

import (
	"errors"

	"cakery/internal/pkg/guard"
)

var ErrGetTomorrowConfirmedOrdersQueryIsNotConstructed = errors.New(
	"GetTomorrowConfirmedOrdersQuery must be created via NewGetTomorrowConfirmedOrdersQuery constructor",
)

// GetTomorrowConfirmedOrdersQuery retrieves the confirmed orders scheduled
// for delivery tomorrow. The delivery-reminder job and the preview endpoint
// both read from this query.
type GetTomorrowConfirmedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTomorrowConfirmedOrdersQuery creates a query for tomorrow's
// confirmed orders.
func NewGetTomorrowConfirmedOrdersQuery() GetTomorrowConfirmedOrdersQuery {
	return GetTomorrowConfirmedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTomorrowConfirmedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetTomorrowConfirmedOrdersQueryIsNotConstructed)
}
