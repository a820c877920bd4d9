// Package types - Report types
package types

import "time"

// Report is the complete result of one run, ready for rendering
type Report struct {
	// RunID correlates the report with log entries
	RunID string `json:"run_id"`

	// Period is the billing month that was reported
	Period BillingPeriod `json:"period"`

	// AsOf is the reference date used for the pace projection
	AsOf time.Time `json:"as_of"`

	// Currency is the currency of every amount
	Currency Currency `json:"currency"`

	// PricingID fingerprints the rate table that was applied
	PricingID string `json:"pricing_id"`

	// GeneratedAt is when the report was produced
	GeneratedAt time.Time `json:"generated_at"`

	// Services holds one cost breakdown per billed service
	Services []ServiceCost `json:"services"`

	// Summary holds the month totals
	Summary MonthSummary `json:"summary"`
}
