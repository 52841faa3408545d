package http

import (
	"github.com/go-playground/validator/v10"

	"cakery/internal/core/application/usecases/queries"
)

// envelope is the uniform response shape: success flag plus either a data
// payload or a human-readable message.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// loginResponse carries the token and profile at the top level, next to the
// success flag, the way clients already consume it.
type loginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    userProfile `json:"user"`
}

type userProfile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createOrderRequest struct {
	RecipientName   string  `json:"recipient_name" validate:"required"`
	Phone           string  `json:"phone" validate:"required"`
	Address         string  `json:"address" validate:"required"`
	CakeDescription string  `json:"cake_description" validate:"required"`
	DeliveryFee     float64 `json:"delivery_fee" validate:"gte=0"`
	DeliveryDate    string  `json:"delivery_date" validate:"required,datetime=2006-01-02"`
	DeliveryTime    string  `json:"delivery_time"`
	CollectionTime  string  `json:"collection_time"`
	Notes           string  `json:"notes"`
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// orderResponse is the wire shape of one order row.
type orderResponse struct {
	ID              int64   `json:"id"`
	RecipientName   string  `json:"recipient_name"`
	Phone           string  `json:"phone"`
	Address         string  `json:"address"`
	CakeDescription string  `json:"cake_description"`
	DeliveryFee     float64 `json:"delivery_fee"`
	DeliveryDate    string  `json:"delivery_date"`
	DeliveryTime    string  `json:"delivery_time"`
	CollectionTime  string  `json:"collection_time"`
	Notes           string  `json:"notes"`
	Status          string  `json:"status"`
}

type monthlyIncomeResponse struct {
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	TotalDeliveries int64   `json:"total_deliveries"`
	TotalIncome     float64 `json:"total_income"`
}

func toOrderResponse(row queries.OrderReadModel) orderResponse {
	return orderResponse{
		ID:              row.ID,
		RecipientName:   row.RecipientName,
		Phone:           row.Phone,
		Address:         row.Address,
		CakeDescription: row.CakeDescription,
		DeliveryFee:     row.DeliveryFee,
		DeliveryDate:    row.DeliveryDate.Format(dateLayout),
		DeliveryTime:    row.DeliveryTime,
		CollectionTime:  row.CollectionTime,
		Notes:           row.Notes,
		Status:          row.Status,
	}
}

func toOrderResponses(rows []queries.OrderReadModel) []orderResponse {
	response := make([]orderResponse, len(rows))
	for i, row := range rows {
		response[i] = toOrderResponse(row)
	}
	return response
}

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the request validator used by the echo instance.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks the struct tags on a bound request body.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
