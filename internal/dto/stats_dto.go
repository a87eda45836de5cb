package dto

import "github.com/shopspring/decimal"

// DailyTotal is one row of GET /api/orders/stats/daily: the summed order
// quantity for one calendar day. Days without orders are not sent; the
// dashboard fills them in client-side.
type DailyTotal struct {
	Day   string          `json:"day"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}
