package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product mirrors a catalog record served by the remote API. Read-only on
// this side: the server is the source of truth, instances live only as long
// as the screen that fetched them.
type Product struct {
	Reference   string `json:"reference"`
	Designation string `json:"designation"`
	// UnitLength is the length one roll covers, in meters. Zero or absent
	// means the product is not sold in rolls.
	UnitLength decimal.Decimal `json:"unit_length"`
	// StockQuantity is expressed in roll units for roll products: the integer
	// part counts whole rolls, the fractional part a started roll.
	StockQuantity        decimal.Decimal `json:"stock_quantity"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	AveragePurchasePrice decimal.Decimal `json:"average_purchase_price"`
	// RollBased is the explicit classification flag. Older API deployments do
	// not send it; callers fall back to the designation heuristic then.
	RollBased *bool `json:"roll_based,omitempty"`
	// StockLabel is an optional server-rendered display string; when absent
	// screens format StockQuantity themselves.
	StockLabel string `json:"stock_label,omitempty"`
}

// rollIndicator is the substring historically used to tag roll products in
// their designation. Kept as a migration fallback for API versions that do
// not send the roll_based flag.
const rollIndicator = "roul"

// IsRollBased reports whether the product is stocked in rolls. The explicit
// flag wins when the API sent one; otherwise the designation substring
// heuristic decides.
func (p Product) IsRollBased() bool {
	if p.RollBased != nil {
		return *p.RollBased
	}
	return strings.Contains(strings.ToLower(p.Designation), rollIndicator)
}

// AvailableMeters is the orderable total for a roll product:
// whole+fractional roll count times meters per roll.
func (p Product) AvailableMeters() decimal.Decimal {
	return p.StockQuantity.Mul(p.UnitLength)
}
