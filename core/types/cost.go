// Package types - Cost result types
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// RegionCost is the priced usage of one service in one region
type RegionCost struct {
	// RegionID is the billing region identifier
	RegionID string `json:"region_id"`

	// Usage is the usage that was priced
	Usage RegionUsage `json:"usage"`

	// Pricing is the rate entry that was applied
	Pricing RegionPricing `json:"pricing"`

	// BandwidthCost is the tiered bandwidth charge
	BandwidthCost decimal.Decimal `json:"bandwidth_cost"`

	// RequestCost is the request charge
	RequestCost decimal.Decimal `json:"request_cost"`

	// Total is BandwidthCost + RequestCost
	Total decimal.Decimal `json:"total"`
}

// ServiceCost is the priced usage of one service across regions
type ServiceCost struct {
	// ServiceID is the provider's service identifier
	ServiceID string `json:"service_id"`

	// Name is the service display name
	Name string `json:"name"`

	// Total is the sum of region totals
	Total decimal.Decimal `json:"total"`

	// BandwidthGB is the bandwidth summed across regions
	BandwidthGB decimal.Decimal `json:"bandwidth_gb"`

	// Requests is the request units summed across regions
	Requests decimal.Decimal `json:"requests"`

	// Regions contains one line item per region, sorted by region id
	Regions []RegionCost `json:"regions"`
}

// MonthSummary is the month-to-date spend and its full-month projection
type MonthSummary struct {
	// MonthToDate is the sum of all service totals
	MonthToDate decimal.Decimal `json:"month_to_date"`

	// Projected is MonthToDate extrapolated to the whole month
	Projected decimal.Decimal `json:"projected"`

	// DaysElapsed is the number of billed days so far
	DaysElapsed int `json:"days_elapsed"`

	// DaysInMonth is the length of the billing month
	DaysInMonth int `json:"days_in_month"`
}
