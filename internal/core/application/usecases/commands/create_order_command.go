package commands

import (
	"errors"
	"fmt"
	"time"

	"cakery/internal/pkg/errs"
	"cakery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new cake-delivery
// order. It carries the full field set except the identifier and the status:
// the store assigns the id and every new order starts pending no matter what
// the caller supplied.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Jane", "555", "1 Rd", "choc",
//	    20.00, deliveryDate, "10:00", "09:00", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("order %d created", id)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	recipientName   string
	phone           string
	address         string
	cakeDescription string
	deliveryFee     float64
	deliveryDate    time.Time
	deliveryTime    string
	collectionTime  string
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Recipient name, phone, address, cake description and delivery date are
// required; the fee must not be negative.
func NewCreateOrderCommand(
	recipientName string,
	phone string,
	address string,
	cakeDescription string,
	deliveryFee float64,
	deliveryDate time.Time,
	deliveryTime string,
	collectionTime string,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryTime:   deliveryTime,
		collectionTime: collectionTime,
		notes:          notes,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecipientName(recipientName),
		cmd.setPhone(phone),
		cmd.setAddress(address),
		cmd.setCakeDescription(cakeDescription),
		cmd.setDeliveryFee(deliveryFee),
		cmd.setDeliveryDate(deliveryDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// RecipientName returns the name of the person receiving the cake.
func (c CreateOrderCommand) RecipientName() string {
	return c.recipientName
}

// Phone returns the recipient's contact phone number.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// CakeDescription returns the free-text cake description.
func (c CreateOrderCommand) CakeDescription() string {
	return c.cakeDescription
}

// DeliveryFee returns the fee charged for the delivery.
func (c CreateOrderCommand) DeliveryFee() float64 {
	return c.deliveryFee
}

// DeliveryDate returns the calendar date of the delivery.
func (c CreateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// DeliveryTime returns the scheduled delivery time of day.
func (c CreateOrderCommand) DeliveryTime() string {
	return c.deliveryTime
}

// CollectionTime returns the bakery collection time.
func (c CreateOrderCommand) CollectionTime() string {
	return c.collectionTime
}

// Notes returns the optional notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setRecipientName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipient name")
	}
	c.recipientName = name
	return nil
}

func (c *CreateOrderCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setCakeDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("cake description")
	}
	c.cakeDescription = description
	return nil
}

func (c *CreateOrderCommand) setDeliveryFee(fee float64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee",
			fmt.Errorf("%.2f is negative", fee))
	}
	c.deliveryFee = fee
	return nil
}

func (c *CreateOrderCommand) setDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("delivery date")
	}
	c.deliveryDate = date
	return nil
}
