// Package order provides the domain model for cake-delivery orders. It
// implements the Order aggregate root together with its lifecycle status and
// the partial-update document applied to existing orders.
//
// The package includes:
//   - Order: the aggregate root holding recipient, schedule, fee and status
//   - Status: a four-value enum (pending, confirmed, delivered, cancelled)
//   - UpdateDocument: a validated, allow-listed partial-update mapping
//
// Key business rules:
//   - Every order starts in pending status; callers cannot choose otherwise
//   - Status must always be one of the four enumerated values
//   - Status changes are unconstrained beyond value validity: there is no
//     transition graph, and delivered may follow pending directly
//   - Partial updates may only touch the explicit set of mutable fields
package order
