package screen

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"bluestrek/internal/dto"
)

// SeriesPoint is one bar of the dashboard chart.
type SeriesPoint struct {
	Day   int
	Label string
	Total decimal.Decimal
}

// Dashboard is the home screen's state: the selected month and the series
// built from the last stats fetch.
type Dashboard struct {
	Month  int // 1..12
	Year   int
	Series []SeriesPoint
}

// NewDashboard starts on the current month.
func NewDashboard(now time.Time) Dashboard {
	return Dashboard{Month: int(now.Month()), Year: now.Year()}
}

// SelectMonth switches the viewed month and drops the stale series; the
// caller refetches and applies WithStats.
func (d Dashboard) SelectMonth(month, year int) Dashboard {
	next := d
	next.Month = month
	next.Year = year
	next.Series = nil
	return next
}

// WithStats builds the chart series from the fetched per-day totals. The API
// only sends days that had orders; the chart wants every day of the month,
// so missing days are filled with zero. Rows outside the selected month are
// ignored.
func (d Dashboard) WithStats(rows []dto.DailyTotal) Dashboard {
	days := daysInMonth(d.Month, d.Year)

	series := make([]SeriesPoint, days)
	for i := range series {
		series[i] = SeriesPoint{Day: i + 1, Label: axisLabel(i + 1)}
	}
	for _, row := range rows {
		day, ok := dayOfMonth(row.Day, d.Month, d.Year)
		if !ok {
			continue
		}
		series[day-1].Total = row.Total
	}

	next := d
	next.Series = series
	return next
}

// daysInMonth uses the day-zero-of-next-month trick.
func daysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dayOfMonth parses a YYYY-MM-DD row key and checks it belongs to the
// selected month.
func dayOfMonth(s string, month, year int) (int, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0, false
	}
	if int(t.Month()) != month || t.Year() != year {
		return 0, false
	}
	return t.Day(), true
}

// axisLabel thins the x axis to every third day so a full month stays
// readable on a phone-sized chart.
func axisLabel(day int) string {
	if (day-1)%3 != 0 {
		return ""
	}
	return fmt.Sprintf("%d", day)
}
