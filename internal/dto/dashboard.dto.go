package dto

import "github.com/shopspring/decimal"

// DashboardStats are the current-month summary tiles: everything since
// the first calendar day of the running month.
type DashboardStats struct {
	NewPatients      int64           `json:"new_patients"`
	Appointments     int64           `json:"appointments"`
	RevenueThisMonth decimal.Decimal `json:"revenue_this_month"`
}
