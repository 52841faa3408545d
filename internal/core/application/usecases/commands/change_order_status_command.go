package commands

import (
	"errors"
	"fmt"

	"cakery/internal/core/domain/model/order"
	"cakery/internal/pkg/errs"
	"cakery/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a status transition request for an
// order. The raw status string is parsed at construction time, so a handler
// only ever sees one of the four enumerated values.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(12, "confirmed")
//	if err != nil {
//	    return err // lists the valid statuses
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status-transition command. The order
// id must be positive and the raw status must parse into the enumerated set.
func NewChangeOrderStatusCommand(orderID int64, rawStatus string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	status, err := order.ParseStatus(rawStatus)
	if err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	cmd.status = status

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the parsed target status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a positive identifier", orderID))
	}
	c.orderID = orderID
	return nil
}
