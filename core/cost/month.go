package cost

import (
	"time"

	"github.com/shopspring/decimal"

	"cdn-cost/core/types"
	"cdn-cost/internal/errors"
)

// Aggregate sums the service totals. An empty slice yields zero.
func Aggregate(results []types.ServiceCost) decimal.Decimal {
	total := decimal.Zero
	for _, r := range results {
		total = total.Add(r.Total)
	}
	return total
}

// Project extrapolates month-to-date spend linearly to the whole month:
// mtd * daysInMonth / daysElapsed.
func Project(monthToDate decimal.Decimal, daysElapsed, daysInMonth int) (decimal.Decimal, error) {
	if daysElapsed == 0 {
		return decimal.Zero, errors.New(errors.TypeDivisionByZero, "cannot project spend with zero elapsed days")
	}
	if daysElapsed < 0 || daysInMonth < 1 || daysElapsed > daysInMonth {
		return decimal.Zero, errors.Newf(errors.TypeInvalidUsage,
			"elapsed days must be within 1..%d, got %d", daysInMonth, daysElapsed)
	}

	// Multiply before dividing so a full month returns mtd exactly.
	return monthToDate.Mul(decimal.NewFromInt(int64(daysInMonth))).
		Div(decimal.NewFromInt(int64(daysElapsed))), nil
}

// DaysInMonth returns the length of a month in the Gregorian calendar
func DaysInMonth(year int, month time.Month) int {
	return types.BillingPeriod{Year: year, Month: month}.DaysIn()
}

// ElapsedDays returns how many days of period have been billed as of asOf.
// The current month counts up to and including asOf's day; a past month
// counts in full. A period after asOf is rejected.
func ElapsedDays(period types.BillingPeriod, asOf time.Time) (int, error) {
	current := types.PeriodOf(asOf)
	switch {
	case period == current:
		return asOf.Day(), nil
	case period.Before(current):
		return period.DaysIn(), nil
	default:
		return 0, errors.Newf(errors.TypeInvalidUsage,
			"billing period %s is after the reference date %s", period, asOf.Format("2006-01-02"))
	}
}

// Summarize aggregates results and projects the month total
func Summarize(results []types.ServiceCost, daysElapsed, daysInMonth int) (types.MonthSummary, error) {
	mtd := Aggregate(results)
	projected, err := Project(mtd, daysElapsed, daysInMonth)
	if err != nil {
		return types.MonthSummary{}, err
	}
	return types.MonthSummary{
		MonthToDate: mtd,
		Projected:   projected,
		DaysElapsed: daysElapsed,
		DaysInMonth: daysInMonth,
	}, nil
}
