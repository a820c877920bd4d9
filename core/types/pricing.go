// Package types - Pricing types
package types

import "github.com/shopspring/decimal"

// RegionPricing holds the rates applied to one billing region
type RegionPricing struct {
	// RegionID is the billing region identifier (e.g. "usa", "europe")
	RegionID string `json:"region_id"`

	// DisplayName is the human-readable region label
	DisplayName string `json:"display_name,omitempty"`

	// BandwidthLow is the price per GB below 1 GB and for the first GB
	BandwidthLow decimal.Decimal `json:"bandwidth_low"`

	// BandwidthHigh is the price per GB beyond the first GB
	BandwidthHigh decimal.Decimal `json:"bandwidth_high"`

	// RequestRate is the price per 10,000 requests
	RequestRate decimal.Decimal `json:"request_rate"`
}
