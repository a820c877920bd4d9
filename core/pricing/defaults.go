package pricing

import (
	"github.com/shopspring/decimal"

	"cdn-cost/core/types"
)

// Fastly billing regions
const (
	RegionANZAC           = "anzac"
	RegionAsia            = "asia"
	RegionIndia           = "asia_india"
	RegionEurope          = "europe"
	RegionLatinAmerica    = "latam"
	RegionSouthAfrica     = "south_africa"
	RegionSouthAmericaStd = "southamerica_std"
	RegionUSA             = "usa"
)

func rate(id, name, low, high, req string) types.RegionPricing {
	return types.RegionPricing{
		RegionID:      id,
		DisplayName:   name,
		BandwidthLow:  decimal.RequireFromString(low),
		BandwidthHigh: decimal.RequireFromString(high),
		RequestRate:   decimal.RequireFromString(req),
	}
}

// DefaultEntries returns the built-in rates in USD
func DefaultEntries() []types.RegionPricing {
	return []types.RegionPricing{
		rate(RegionANZAC, "Australia & New Zealand", "0.171", "0.14", "0.006"),
		rate(RegionAsia, "Asia", "0.108", "0.14", "0.006"),
		rate(RegionIndia, "India", "0.252", "0.24", "0.0128"),
		rate(RegionEurope, "Europe", "0.108", "0.08", "0.006"),
		rate(RegionLatinAmerica, "Latin America (Brazil)", "0.252", "0.24", "0.0128"),
		rate(RegionSouthAfrica, "South Africa", "0.252", "0.24", "0.0128"),
		rate(RegionSouthAmericaStd, "South America", "0.171", "0.14", "0.0072"),
		rate(RegionUSA, "North America", "0.108", "0.08", "0.0075"),
	}
}

// Default returns a table with the built-in rates
func Default() *Table {
	return MustNewTable(DefaultEntries())
}
