// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows.
package orderrepo

import (
	"time"

	"cakery/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders. The
// store assigns the identifier on insert; the status column is indexed for
// the read-side filters on confirmed and delivered orders.
type OrderDTO struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	RecipientName   string    `gorm:"not null"`
	Phone           string    `gorm:"not null"`
	Address         string    `gorm:"not null"`
	CakeDescription string    `gorm:"not null"`
	DeliveryFee     float64   `gorm:"type:numeric(10,2)"`
	DeliveryDate    time.Time `gorm:"type:date;index"`
	DeliveryTime    string    `gorm:"type:varchar(8)"`
	CollectionTime  string    `gorm:"type:varchar(8)"`
	Notes           string
	Status          string `gorm:"type:varchar(16);index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID(),
		RecipientName:   aggregate.RecipientName(),
		Phone:           aggregate.Phone(),
		Address:         aggregate.Address(),
		CakeDescription: aggregate.CakeDescription(),
		DeliveryFee:     aggregate.DeliveryFee(),
		DeliveryDate:    aggregate.DeliveryDate(),
		DeliveryTime:    aggregate.DeliveryTime(),
		CollectionTime:  aggregate.CollectionTime(),
		Notes:           aggregate.Notes(),
		Status:          aggregate.Status().String(),
	}
}

// toDomain converts a database row to an order aggregate, validating the
// stored status on the way.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.ID,
		dto.RecipientName,
		dto.Phone,
		dto.Address,
		dto.CakeDescription,
		dto.DeliveryFee,
		dto.DeliveryDate,
		dto.DeliveryTime,
		dto.CollectionTime,
		dto.Notes,
		order.Status(dto.Status),
	)
}
