package commands

import (
	"errors"
	"fmt"

	"cakery/internal/core/domain/model/order"
	"cakery/internal/pkg/errs"
	"cakery/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an existing order: the
// target order id plus a validated document naming the fields to change.
// The id always comes from the request path; an id carried inside the
// document was already stripped when the document was built.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	document order.UpdateDocument

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a partial-update command. The order id must
// be positive and the document must have been built via NewUpdateDocument.
func NewUpdateOrderCommand(orderID int64, document order.UpdateDocument) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDocument(document),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Document returns the validated partial-update document.
func (c UpdateOrderCommand) Document() order.UpdateDocument {
	return c.document
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a positive identifier", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setDocument(document order.UpdateDocument) error {
	if document.IsZero() {
		return errs.NewValueIsInvalidError("no fields to update")
	}
	c.document = document
	return nil
}
