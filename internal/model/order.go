package model

import "github.com/shopspring/decimal"

// Order is a past order as listed by the remote API.
type Order struct {
	ClientName         string          `json:"client_name"`
	ProductDesignation string          `json:"product_designation"`
	Quantity           decimal.Decimal `json:"quantity"`
	// MetersOrdered is set (mirroring Quantity) for roll products and zero
	// otherwise; list screens use it to pick the display unit.
	MetersOrdered decimal.Decimal `json:"meters_ordered"`
	OrderDate     string          `json:"order_date"`
}

// DisplayQuantity renders the quantity the way the order list shows it:
// meters when the order was placed in meters, a bare count otherwise.
func (o Order) DisplayQuantity() string {
	if o.MetersOrdered.IsPositive() {
		return o.MetersOrdered.String() + " m"
	}
	return o.Quantity.String()
}
