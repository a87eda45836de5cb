package screen

import (
	"strings"

	"github.com/shopspring/decimal"

	"bluestrek/internal/model"
	"bluestrek/internal/stock"
)

// availabilityThreshold is the stock level above which a product is flagged
// as comfortably available on the list screen.
var availabilityThreshold = decimal.NewFromInt(5)

// ProductRow is one rendered line of the product list.
type ProductRow struct {
	Product   model.Product
	StockLine string
	Available bool
}

// ProductList is the product screen's state: the full catalog plus the
// current search filter.
type ProductList struct {
	Products []model.Product
	Query    string
}

// NewProductList builds the list state from a fresh catalog fetch.
func NewProductList(products []model.Product) ProductList {
	return ProductList{Products: products}
}

// Search sets the filter text.
func (l ProductList) Search(query string) ProductList {
	next := l
	next.Query = query
	return next
}

// Rows renders the visible lines: the catalog filtered by the query, each
// with its stock line and availability flag.
func (l ProductList) Rows() []ProductRow {
	q := strings.ToLower(strings.TrimSpace(l.Query))

	rows := make([]ProductRow, 0, len(l.Products))
	for _, p := range l.Products {
		if q != "" && !matches(p, q) {
			continue
		}
		rows = append(rows, ProductRow{
			Product:   p,
			StockLine: productStockLine(p),
			Available: p.StockQuantity.GreaterThan(availabilityThreshold),
		})
	}
	return rows
}

// matches checks the lowered query against reference and designation.
func matches(p model.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Reference), q) ||
		strings.Contains(strings.ToLower(p.Designation), q)
}

// productStockLine prefers the server-rendered label, falling back to the
// local breakdown.
func productStockLine(p model.Product) string {
	if p.StockLabel != "" {
		return p.StockLabel
	}
	unitLength := decimal.Zero
	if p.IsRollBased() {
		unitLength = p.UnitLength
	}
	return stock.Format(p.StockQuantity, unitLength)
}
