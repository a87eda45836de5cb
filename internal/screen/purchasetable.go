package screen

import (
	"strings"

	"github.com/shopspring/decimal"

	"bluestrek/internal/model"
	"bluestrek/internal/validation"
)

// PurchaseRow is one editable line of the purchase table: the persisted
// record plus the staged field text. Edits live in the text fields until the
// row is submitted; the record itself never changes screen-side.
type PurchaseRow struct {
	Purchase     model.Purchase
	QuantityText string
	PriceText    string
}

// Dirty reports whether the staged text diverges from the persisted record.
func (r PurchaseRow) Dirty() bool {
	return r.QuantityText != r.Purchase.QuantityPurchased.String() ||
		r.PriceText != r.Purchase.PurchasePrice.String()
}

// PurchaseTable is the purchase screen's state: the loaded rows and the
// always-present new-line entry at the bottom.
type PurchaseTable struct {
	Rows   []PurchaseRow
	NewRow validation.PurchaseInput
}

// NewPurchaseTable builds the table state from a fresh fetch. Staged text is
// seeded from the records so an untouched row round-trips unchanged.
func NewPurchaseTable(purchases []model.Purchase) PurchaseTable {
	rows := make([]PurchaseRow, len(purchases))
	for i, p := range purchases {
		rows[i] = PurchaseRow{
			Purchase:     p,
			QuantityText: p.QuantityPurchased.String(),
			PriceText:    p.PurchasePrice.String(),
		}
	}
	return PurchaseTable{Rows: rows}
}

// EditRowQuantity stages new quantity text on row i. Out-of-range indexes
// are ignored rather than panicking on a stale event.
func (t PurchaseTable) EditRowQuantity(i int, s string) PurchaseTable {
	return t.editRow(i, func(r PurchaseRow) PurchaseRow {
		r.QuantityText = s
		return r
	})
}

// EditRowPrice stages new price text on row i.
func (t PurchaseTable) EditRowPrice(i int, s string) PurchaseTable {
	return t.editRow(i, func(r PurchaseRow) PurchaseRow {
		r.PriceText = s
		return r
	})
}

func (t PurchaseTable) editRow(i int, apply func(PurchaseRow) PurchaseRow) PurchaseTable {
	if i < 0 || i >= len(t.Rows) {
		return t
	}
	next := t
	next.Rows = make([]PurchaseRow, len(t.Rows))
	copy(next.Rows, t.Rows)
	next.Rows[i] = apply(next.Rows[i])
	return next
}

// EditNewReference, EditNewQuantity and EditNewPrice stage text in the
// new-line entry.
func (t PurchaseTable) EditNewReference(s string) PurchaseTable {
	next := t
	next.NewRow.ProductReference = s
	return next
}

func (t PurchaseTable) EditNewQuantity(s string) PurchaseTable {
	next := t
	next.NewRow.Quantity = s
	return next
}

func (t PurchaseTable) EditNewPrice(s string) PurchaseTable {
	next := t
	next.NewRow.Price = s
	return next
}

// CanAddRow gates the add button: all three new-line fields must parse and
// be positive before a submit is even attempted.
func (t PurchaseTable) CanAddRow() bool {
	if strings.TrimSpace(t.NewRow.ProductReference) == "" {
		return false
	}
	qty, err := decimal.NewFromString(strings.TrimSpace(t.NewRow.Quantity))
	if err != nil || qty.LessThanOrEqual(decimal.Zero) {
		return false
	}
	price, err := decimal.NewFromString(strings.TrimSpace(t.NewRow.Price))
	if err != nil || price.LessThanOrEqual(decimal.Zero) {
		return false
	}
	return true
}

// ClearNewRow empties the new-line entry after a successful submit.
func (t PurchaseTable) ClearNewRow() PurchaseTable {
	next := t
	next.NewRow = validation.PurchaseInput{}
	return next
}
