package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"bluestrek/internal/dto"
)

// PurchaseInput is the raw content of the purchase table's new-row fields.
type PurchaseInput struct {
	ProductReference string
	Quantity         string
	Price            string
}

// ValidatePurchaseCreate checks a new purchase line and returns the wire
// body for POST /api/purchases. Any missing or non-positive field is the
// same user mistake — one MissingFields error covers them all, matching
// the single notice the screen shows.
func ValidatePurchaseCreate(in PurchaseInput) (dto.CreatePurchaseRequest, error) {
	ref := strings.TrimSpace(in.ProductReference)
	qty, qtyErr := decimal.NewFromString(strings.TrimSpace(in.Quantity))
	price, priceErr := decimal.NewFromString(strings.TrimSpace(in.Price))

	if ref == "" || qtyErr != nil || qty.LessThanOrEqual(decimal.Zero) ||
		priceErr != nil || price.LessThanOrEqual(decimal.Zero) {
		return dto.CreatePurchaseRequest{}, newError(MissingFields)
	}

	req := dto.CreatePurchaseRequest{
		ProductReference:  ref,
		QuantityPurchased: qty,
		PurchasePrice:     price,
	}
	if err := Struct(req); err != nil {
		return dto.CreatePurchaseRequest{}, newError(MissingFields)
	}
	return req, nil
}

// ValidatePurchaseUpdate checks an in-place edit of an existing line.
// Quantity and price fail independently so the screen can point at the
// offending field; reference and designation are immutable on update and
// not re-validated.
func ValidatePurchaseUpdate(quantity, price string) (dto.UpdatePurchaseRequest, error) {
	qty, err := decimal.NewFromString(strings.TrimSpace(quantity))
	if err != nil || qty.LessThanOrEqual(decimal.Zero) {
		return dto.UpdatePurchaseRequest{}, newError(InvalidQuantity)
	}

	p, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil || p.LessThanOrEqual(decimal.Zero) {
		return dto.UpdatePurchaseRequest{}, newError(InvalidPrice)
	}

	return dto.UpdatePurchaseRequest{QuantityPurchased: qty, PurchasePrice: p}, nil
}
