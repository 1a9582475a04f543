package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthKey buckets an instant as YYYY-MM. Sorting the keys as strings
// sorts them chronologically.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// FirstOfMonth is the start of t's calendar month, the inclusive lower
// bound for the dashboard's current-month counters.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// TrailingYearStart is the lower bound of the 12-month rollup window.
func TrailingYearStart(now time.Time) time.Time {
	return now.AddDate(0, -12, 0)
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type MonthlyRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}
