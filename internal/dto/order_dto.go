package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest is the body of POST /api/orders. For roll products the
// server schema expects Quantity and MetersOrdered to mirror the same
// normalized meter total; for plain products MetersOrdered is omitted.
type CreateOrderRequest struct {
	ClientID         int64            `json:"client_id" validate:"required"`
	ProductReference string           `json:"product_reference" validate:"required"`
	Quantity         decimal.Decimal  `json:"quantity" validate:"required,gt=0"`
	MetersOrdered    *decimal.Decimal `json:"meters_ordered,omitempty" validate:"omitempty,gt=0"`
}
