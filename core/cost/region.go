// Package cost prices CDN usage.
// Region computes one region's charges, Calculator aggregates a service, and
// Aggregate/Project turn service totals into a month figure and its pace.
package cost

import (
	"github.com/shopspring/decimal"

	"cdn-cost/core/types"
	"cdn-cost/internal/errors"
)

// lowTierGB is the volume billed at the low bandwidth rate
var lowTierGB = decimal.NewFromInt(1)

// BandwidthCost prices bandwidth with two tiers. Below 1 GB everything is
// billed at the low rate; from 1 GB on, the first GB is billed at the low
// rate and the remainder at the high rate.
func BandwidthCost(gb decimal.Decimal, p types.RegionPricing) decimal.Decimal {
	if gb.LessThan(lowTierGB) {
		return gb.Mul(p.BandwidthLow)
	}
	return lowTierGB.Mul(p.BandwidthLow).Add(gb.Sub(lowTierGB).Mul(p.BandwidthHigh))
}

// RequestCost prices requests given in units of 10,000
func RequestCost(requests decimal.Decimal, p types.RegionPricing) decimal.Decimal {
	return requests.Mul(p.RequestRate)
}

// Region prices one region's usage with its rates
func Region(usage types.RegionUsage, p types.RegionPricing) (types.RegionCost, error) {
	if usage.BandwidthGB.IsNegative() {
		return types.RegionCost{}, errors.InvalidUsage("negative bandwidth").
			WithContext("region", usage.RegionID).
			WithContext("bandwidth", usage.BandwidthGB.String())
	}
	if usage.Requests.IsNegative() {
		return types.RegionCost{}, errors.InvalidUsage("negative request count").
			WithContext("region", usage.RegionID).
			WithContext("requests", usage.Requests.String())
	}

	bw := BandwidthCost(usage.BandwidthGB, p)
	req := RequestCost(usage.Requests, p)

	return types.RegionCost{
		RegionID:      usage.RegionID,
		Usage:         usage,
		Pricing:       p,
		BandwidthCost: bw,
		RequestCost:   req,
		Total:         bw.Add(req),
	}, nil
}
