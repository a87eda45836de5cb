// Package validation holds the client-side checks run before anything is
// submitted to the remote API: order satisfiability against available stock
// and purchase-line field validation. All failures here are recoverable
// user-input errors — they are shown as a blocking notice and never
// propagated past the screen that produced them.
package validation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind classifies a validation failure.
type Kind int

const (
	KindUnknown Kind = iota
	MissingClient
	MissingProduct
	MissingQuantity
	InvalidQuantity
	InvalidPrice
	InsufficientStock
	MissingFields
)

// Error is a validation failure with a ready-to-display message.
// InsufficientStock errors additionally carry the attempted and available
// amounts so screens can show both.
type Error struct {
	Kind      Kind
	Attempted decimal.Decimal
	Available decimal.Decimal
	// Unit labels the amounts above ("m" for roll orders, "" for unit counts).
	Unit string
}

func (e *Error) Error() string {
	switch e.Kind {
	case MissingClient:
		return "select a client first"
	case MissingProduct:
		return "select a product first"
	case MissingQuantity:
		return "enter at least one of rolls or meters"
	case InvalidQuantity:
		return "enter a valid quantity"
	case InvalidPrice:
		return "enter a valid purchase price"
	case InsufficientStock:
		if e.Unit != "" {
			return fmt.Sprintf("the requested total (%s %s) exceeds the available stock (%s %s)",
				e.Attempted.String(), e.Unit, e.Available.String(), e.Unit)
		}
		return fmt.Sprintf("insufficient stock: requested %s, available %s",
			e.Attempted.String(), e.Available.String())
	case MissingFields:
		return "fill in every field with valid values"
	default:
		return "invalid input"
	}
}

func newError(k Kind) *Error { return &Error{Kind: k} }

// KindOf extracts the failure kind, or KindUnknown for non-validation
// errors.
func KindOf(err error) Kind {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return KindUnknown
}
