package billing

import "github.com/shopspring/decimal"

// Total sums price snapshots and rounds once, at the end, to two
// decimal places. Invoice totals are derived from these snapshots only,
// never from current catalog prices.
func Total(snapshots []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, s := range snapshots {
		total = total.Add(s)
	}
	return total.Round(2)
}
