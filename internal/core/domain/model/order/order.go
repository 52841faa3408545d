package order

import (
	"errors"
	"fmt"
	"time"

	"cakery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a single cake-delivery job. It is the aggregate root of
// the system: recipient and schedule details, the delivery fee, and the
// lifecycle status.
//
// Invariants:
//   - Recipient name, phone, address and cake description are required
//   - The delivery fee is never negative
//   - The delivery date is always set
//   - Status is always one of the four enumerated values
//   - Can only be created through NewOrder or RestoreOrder
//
// The identifier is assigned by the store on creation and immutable
// thereafter; an order built with NewOrder carries id 0 until persisted.
type Order struct {
	id              int64
	recipientName   string
	phone           string
	address         string
	cakeDescription string
	deliveryFee     float64
	deliveryDate    time.Time
	deliveryTime    string
	collectionTime  string
	notes           string
	status          Status

	isConstructed bool
}

// NewOrder creates a new Order in pending status. The caller never chooses
// the initial status: every order starts pending regardless of what the
// request carried.
//
// The id is left at zero; the repository assigns it on insert.
func NewOrder(
	recipientName string,
	phone string,
	address string,
	cakeDescription string,
	deliveryFee float64,
	deliveryDate time.Time,
	deliveryTime string,
	collectionTime string,
	notes string,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setRecipientName(recipientName),
		o.setPhone(phone),
		o.setAddress(address),
		o.setCakeDescription(cakeDescription),
		o.setDeliveryFee(deliveryFee),
		o.setDeliveryDate(deliveryDate),
	); err != nil {
		return nil, err
	}

	o.deliveryTime = deliveryTime
	o.collectionTime = collectionTime
	o.notes = notes

	return o, nil
}

// RestoreOrder rehydrates an Order from persistence, including its assigned
// id and stored status. The status is validated so a corrupted row cannot
// produce an order outside the enumerated set.
func RestoreOrder(
	id int64,
	recipientName string,
	phone string,
	address string,
	cakeDescription string,
	deliveryFee float64,
	deliveryDate time.Time,
	deliveryTime string,
	collectionTime string,
	notes string,
	status Status,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(recipientName, phone, address, cakeDescription,
		deliveryFee, deliveryDate, deliveryTime, collectionTime, notes)
	if err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or 0 for an unpersisted order.
func (o *Order) ID() int64 {
	return o.id
}

// SetID records the store-assigned identifier after the first insert.
func (o *Order) SetID(id int64) {
	o.id = id
}

// RecipientName returns the name of the person receiving the cake.
func (o *Order) RecipientName() string {
	return o.recipientName
}

// Phone returns the recipient's contact phone number.
func (o *Order) Phone() string {
	return o.phone
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// CakeDescription returns the free-text description of the cake.
func (o *Order) CakeDescription() string {
	return o.cakeDescription
}

// DeliveryFee returns the fee charged for this delivery.
func (o *Order) DeliveryFee() float64 {
	return o.deliveryFee
}

// DeliveryDate returns the calendar date the cake is delivered on.
func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

// DeliveryTime returns the scheduled delivery time of day.
func (o *Order) DeliveryTime() string {
	return o.deliveryTime
}

// CollectionTime returns the time the cake is collected from the bakery.
func (o *Order) CollectionTime() string {
	return o.collectionTime
}

// Notes returns the optional free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus moves the order to the given status. The value must be one of
// the four enumerated statuses; beyond that any change is allowed, including
// setting the current status again.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setRecipientName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipient name")
	}
	o.recipientName = name
	return nil
}

func (o *Order) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	o.phone = phone
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setCakeDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("cake description")
	}
	o.cakeDescription = description
	return nil
}

func (o *Order) setDeliveryFee(fee float64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee",
			fmt.Errorf("%.2f is negative", fee))
	}
	o.deliveryFee = fee
	return nil
}

func (o *Order) setDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("delivery date")
	}
	o.deliveryDate = date
	return nil
}
