// Package screen holds the per-screen view state as immutable values. Every
// user event is a method that returns the next state; nothing mutates in
// place, so a state can be logged, diffed or replayed safely. Network work
// stays out of this package — services do the fetching, screens only shape
// what was fetched.
package screen

import (
	"fmt"

	"github.com/shopspring/decimal"

	"bluestrek/internal/model"
	"bluestrek/internal/stock"
	"bluestrek/internal/validation"
)

// OrderForm is the order screen's state between two events.
type OrderForm struct {
	Client  *model.Client
	Product *model.Product

	// Field text as currently displayed, post-sanitization.
	Rolls    string
	Meters   string
	Quantity string

	// VirtualRolls is live feedback under the meters field: how many whole
	// rolls the typed meter value corresponds to.
	VirtualRolls int64

	// StockLine is the availability line shown under the product picker,
	// captured when the product was selected.
	StockLine string
}

// NewOrderForm returns the blank form shown on screen entry.
func NewOrderForm() OrderForm {
	return OrderForm{}
}

// SelectClient changes the client and keeps everything else as is.
func (f OrderForm) SelectClient(c *model.Client) OrderForm {
	next := f
	next.Client = c
	return next
}

// SelectProduct changes the product and clears the quantity fields — a typed
// quantity is meaningless across products with different units. The stock
// line is re-rendered from the freshly selected product.
func (f OrderForm) SelectProduct(p *model.Product) OrderForm {
	next := f
	next.Product = p
	next.Rolls = ""
	next.Meters = ""
	next.Quantity = ""
	next.VirtualRolls = 0
	next.StockLine = stockLine(p)
	return next
}

// TypeRolls applies a keystroke in the rolls field. Non-digits are dropped
// before the text lands in the state.
func (f OrderForm) TypeRolls(s string) OrderForm {
	next := f
	next.Rolls = validation.SanitizeRolls(s)
	return next
}

// TypeMeters applies a keystroke in the meters field and refreshes the
// virtual roll feedback.
func (f OrderForm) TypeMeters(s string) OrderForm {
	next := f
	next.Meters = validation.SanitizeMeters(s)
	next.VirtualRolls = 0
	if next.Product != nil && next.Meters != "" {
		if m, err := decimal.NewFromString(next.Meters); err == nil {
			next.VirtualRolls = stock.VirtualRolls(m, next.Product.UnitLength)
		}
	}
	return next
}

// TypeQuantity applies a keystroke in the plain-quantity field. The field is
// validated on submit, not per keystroke, so the raw text is kept.
func (f OrderForm) TypeQuantity(s string) OrderForm {
	next := f
	next.Quantity = s
	return next
}

// Reset clears the form back to its entry state after a successful submit.
func (f OrderForm) Reset() OrderForm {
	return NewOrderForm()
}

// Input packages the current field text for validation and submission.
func (f OrderForm) Input() validation.OrderInput {
	return validation.OrderInput{
		Rolls:    f.Rolls,
		Meters:   f.Meters,
		Quantity: f.Quantity,
	}
}

// stockLine renders the availability line for a just-selected product. The
// server-provided label wins when present.
func stockLine(p *model.Product) string {
	if p == nil {
		return ""
	}
	if p.StockLabel != "" {
		return fmt.Sprintf("In stock: %s", p.StockLabel)
	}
	unitLength := decimal.Zero
	if p.IsRollBased() {
		unitLength = p.UnitLength
	}
	return fmt.Sprintf("In stock: %s", stock.Format(p.StockQuantity, unitLength))
}
