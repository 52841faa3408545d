// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS split.
// Queries bypass the domain aggregates and read optimized models straight
// from the database.
package queries

import "time"

// OrderReadModel is the read-side projection of an order row. Field names
// follow the column names so gorm can scan rows directly.
type OrderReadModel struct {
	ID              int64
	RecipientName   string
	Phone           string
	Address         string
	CakeDescription string
	DeliveryFee     float64
	DeliveryDate    time.Time
	DeliveryTime    string
	CollectionTime  string
	Notes           string
	Status          string
}

// orderColumns is the shared projection used by every order list query.
const orderColumns = `
		id,
		recipient_name,
		phone,
		address,
		cake_description,
		delivery_fee,
		delivery_date,
		delivery_time,
		collection_time,
		notes,
		status`
