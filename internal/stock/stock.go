// Package stock converts raw stock quantities into the roll/meter
// breakdowns the screens display. Stock for roll products is tracked as a
// fractional roll count: the integer part is whole rolls, the fraction a
// started roll.
package stock

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Format renders a stock quantity for display. unitLength is the length one
// roll covers; zero or negative means the product is not roll-based and the
// quantity is shown as a plain unit count.
//
// Inputs are assumed validated, non-negative and finite — screens guard
// before calling.
func Format(stockQuantity, unitLength decimal.Decimal) string {
	if unitLength.LessThanOrEqual(decimal.Zero) {
		return fmt.Sprintf("%s units", stockQuantity.String())
	}

	wholeRolls := stockQuantity.Floor()
	remainderMeters := stockQuantity.Sub(wholeRolls).Mul(unitLength).Round(0)

	return fmt.Sprintf("%s roll(s) and %s m", wholeRolls.String(), remainderMeters.String())
}

// VirtualRolls is the advisory roll count a typed meter value corresponds
// to: floor(meters / unitLength). Shown as live feedback while the user
// types, never fed into the stock check.
func VirtualRolls(meters, unitLength decimal.Decimal) int64 {
	if unitLength.LessThanOrEqual(decimal.Zero) || meters.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return meters.Div(unitLength).Floor().IntPart()
}
