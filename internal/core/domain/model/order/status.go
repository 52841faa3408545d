package order

import (
	"fmt"
	"strings"

	"cakery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It is a string-backed
// enum so the persisted value and the API value are the same word.
//
// Exactly four values exist. There is no transition graph: any valid status
// may follow any other (delivered straight from pending is allowed). That
// permissiveness is a deliberate property of the workflow, not an oversight.
type Status string

const (
	// StatusPending is the initial status of every newly created order.
	StatusPending Status = "pending"

	// StatusConfirmed marks an order the customer has confirmed for delivery.
	StatusConfirmed Status = "confirmed"

	// StatusDelivered marks a completed delivery. Only delivered orders
	// count toward income reporting.
	StatusDelivered Status = "delivered"

	// StatusCancelled marks an order that will not be delivered.
	StatusCancelled Status = "cancelled"
)

// ValidStatuses returns the four allowed status values in display order.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusDelivered, StatusCancelled}
}

// ParseStatus converts a raw string into a Status, rejecting anything
// outside the enumerated set. The error names the valid values so it can be
// surfaced to callers as-is.
func ParseStatus(raw string) (Status, error) {
	for _, s := range ValidStatuses() {
		if raw == string(s) {
			return s, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q must be one of: %s", raw, joinStatuses()))
}

// Validate checks the Status holds one of the four enumerated values.
func (s Status) Validate() error {
	_, err := ParseStatus(string(s))
	return err
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

func joinStatuses() string {
	valid := ValidStatuses()
	parts := make([]string, len(valid))
	for i, s := range valid {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
