package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"bluestrek/internal/dto"
	"bluestrek/internal/model"
)

// OrderInput is the raw order form content: field text exactly as typed.
// Roll products use Rolls+Meters, plain products use Quantity.
type OrderInput struct {
	Rolls    string
	Meters   string
	Quantity string
}

// NormalizedOrder is the server's canonical quantity representation after
// unit reconciliation. For roll orders MetersOrdered mirrors Quantity; for
// plain orders it is nil.
type NormalizedOrder struct {
	Quantity      decimal.Decimal
	MetersOrdered *decimal.Decimal
}

// Request builds the wire body for POST /api/orders.
func (n NormalizedOrder) Request(clientID int64, productReference string) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		ClientID:         clientID,
		ProductReference: productReference,
		Quantity:         n.Quantity,
		MetersOrdered:    n.MetersOrdered,
	}
}

// ValidateOrder decides whether a proposed order is satisfiable and
// computes the normalized quantity to submit. Selection checks come first
// and short-circuit the quantity checks. Pure: same inputs, same result.
func ValidateOrder(client *model.Client, product *model.Product, in OrderInput) (NormalizedOrder, error) {
	if client == nil {
		return NormalizedOrder{}, newError(MissingClient)
	}
	if product == nil {
		return NormalizedOrder{}, newError(MissingProduct)
	}

	if product.IsRollBased() {
		return validateRollOrder(product, in)
	}
	return validatePlainOrder(product, in)
}

// validateRollOrder handles products stocked in rolls: the user supplies
// rolls, meters, or both, and the total is checked in meters.
func validateRollOrder(product *model.Product, in OrderInput) (NormalizedOrder, error) {
	rolls := parseOrZero(SanitizeRolls(in.Rolls))
	meters := parseOrZero(SanitizeMeters(in.Meters))

	// At least one of the two fields must be positive.
	if rolls.LessThanOrEqual(decimal.Zero) && meters.LessThanOrEqual(decimal.Zero) {
		return NormalizedOrder{}, newError(MissingQuantity)
	}

	totalMeters := rolls.Mul(product.UnitLength).Add(meters)
	availableMeters := product.AvailableMeters()

	if totalMeters.GreaterThan(availableMeters) {
		return NormalizedOrder{}, &Error{
			Kind:      InsufficientStock,
			Attempted: totalMeters,
			Available: availableMeters,
			Unit:      "m",
		}
	}

	return NormalizedOrder{Quantity: totalMeters, MetersOrdered: &totalMeters}, nil
}

// validatePlainOrder handles unit-counted products.
func validatePlainOrder(product *model.Product, in OrderInput) (NormalizedOrder, error) {
	qty, err := decimal.NewFromString(strings.TrimSpace(in.Quantity))
	if err != nil || qty.LessThanOrEqual(decimal.Zero) {
		return NormalizedOrder{}, newError(InvalidQuantity)
	}

	// Ordering exactly the remaining stock is allowed.
	if qty.GreaterThan(product.StockQuantity) {
		return NormalizedOrder{}, &Error{
			Kind:      InsufficientStock,
			Attempted: qty,
			Available: product.StockQuantity,
		}
	}

	return NormalizedOrder{Quantity: qty}, nil
}
