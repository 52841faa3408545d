package queries

import (
	"errors"
	"fmt"

	"cakery/internal/pkg/errs"
	"cakery/internal/pkg/guard"
)

var ErrGetMonthlyIncomeQueryIsNotConstructed = errors.New(
	"GetMonthlyIncomeQuery must be created via NewGetMonthlyIncomeQuery constructor",
)

// GetMonthlyIncomeQuery computes delivery counts and fee sums for delivered
// orders grouped by (year, month) of delivery date. Year and month are
// optional filters: both narrow to one group, year alone narrows to that
// year's months, neither returns all groups.
//
// Example:
//
//	query, err := NewGetMonthlyIncomeQuery(2024, 6)
//	if err != nil {
//	    return err
//	}
//	groups, err := handler.Handle(ctx, query)
type GetMonthlyIncomeQuery struct { //nolint:recvcheck //using for validation
	year  int
	month int

	guard guard.ConstructorGuard
}

// NewGetMonthlyIncomeQuery creates an income query. Zero means "no filter".
// A month filter requires a year filter, and the month must be 1 through 12.
func NewGetMonthlyIncomeQuery(year, month int) (GetMonthlyIncomeQuery, error) {
	q := GetMonthlyIncomeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setYear(year),
		q.setMonth(month),
	); err != nil {
		return GetMonthlyIncomeQuery{}, err
	}

	if month != 0 && year == 0 {
		return GetMonthlyIncomeQuery{}, errs.NewValueIsInvalidErrorWithCause("month",
			errors.New("a month filter requires a year filter"))
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMonthlyIncomeQuery) Validate() error {
	return q.guard.Validate(ErrGetMonthlyIncomeQueryIsNotConstructed)
}

// Year returns the year filter, or 0 when unfiltered.
func (q GetMonthlyIncomeQuery) Year() int {
	return q.year
}

// Month returns the month filter, or 0 when unfiltered.
func (q GetMonthlyIncomeQuery) Month() int {
	return q.month
}

func (q *GetMonthlyIncomeQuery) setYear(year int) error {
	if year < 0 {
		return errs.NewValueIsInvalidErrorWithCause("year",
			fmt.Errorf("%d is negative", year))
	}
	q.year = year
	return nil
}

func (q *GetMonthlyIncomeQuery) setMonth(month int) error {
	if month < 0 || month > 12 {
		return errs.NewValueIsInvalidErrorWithCause("month",
			fmt.Errorf("%d is not a calendar month", month))
	}
	q.month = month
	return nil
}
