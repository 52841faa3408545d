package queries

import (
	"errors"
	"fmt"

	"cakery/internal/pkg/errs"
	"cakery/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order by its identifier.
type GetOrderByIDQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for one order. The id must be
// positive.
func NewGetOrderByIDQuery(orderID int64) (GetOrderByIDQuery, error) {
	q := GetOrderByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return GetOrderByIDQuery{}, errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a positive identifier", orderID))
	}
	q.orderID = orderID

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier to look up.
func (q GetOrderByIDQuery) OrderID() int64 {
	return q.orderID
}
