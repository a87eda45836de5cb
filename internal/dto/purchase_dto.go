package dto

import "github.com/shopspring/decimal"

// CreatePurchaseRequest is the body of POST /api/purchases.
type CreatePurchaseRequest struct {
	ProductReference  string          `json:"product_reference" validate:"required"`
	QuantityPurchased decimal.Decimal `json:"quantity_purchased" validate:"required,gt=0"`
	PurchasePrice     decimal.Decimal `json:"purchase_price" validate:"required,gt=0"`
}

// UpdatePurchaseRequest is the body of PUT /api/purchases/:id. Reference and
// designation are immutable server-side and therefore absent here.
type UpdatePurchaseRequest struct {
	QuantityPurchased decimal.Decimal `json:"quantity_purchased" validate:"required,gt=0"`
	PurchasePrice     decimal.Decimal `json:"purchase_price" validate:"required,gt=0"`
}
