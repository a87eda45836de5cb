package model

import "github.com/shopspring/decimal"

// Purchase mirrors a server-side purchase record shown in the editable
// purchase table. Quantity and price may be edited locally before being
// persisted through the update endpoint; the other fields are display data.
type Purchase struct {
	ID                int64           `json:"id"`
	ProductReference  string          `json:"product_reference"`
	Designation       string          `json:"designation"`
	QuantityPurchased decimal.Decimal `json:"quantity_purchased"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	PurchaseDate      string          `json:"purchase_date"`
}
