// Package types - Billing period
package types

import (
	"fmt"
	"time"
)

// BillingPeriod identifies one calendar month
type BillingPeriod struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// PeriodOf returns the billing period containing t
func PeriodOf(t time.Time) BillingPeriod {
	return BillingPeriod{Year: t.Year(), Month: t.Month()}
}

// Validate checks the month and year are usable
func (p BillingPeriod) Validate() error {
	if p.Month < time.January || p.Month > time.December {
		return fmt.Errorf("month must be between 1 and 12, got %d", int(p.Month))
	}
	if p.Year < 1 {
		return fmt.Errorf("year must be positive, got %d", p.Year)
	}
	return nil
}

// Start returns midnight UTC on the first day of the period
func (p BillingPeriod) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the period (Gregorian calendar)
func (p BillingPeriod) DaysIn() int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Before reports whether p ends before o starts
func (p BillingPeriod) Before(o BillingPeriod) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Month < o.Month
}

// String returns the period as YYYY-MM
func (p BillingPeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}
