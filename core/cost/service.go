package cost

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cdn-cost/core/pricing"
	"cdn-cost/core/types"
	"cdn-cost/internal/errors"
	"cdn-cost/internal/logging"
)

// Calculator prices services against a fixed rate table
type Calculator struct {
	table  *pricing.Table
	logger *zap.Logger
}

// NewCalculator creates a calculator. A nil logger uses the global one.
func NewCalculator(table *pricing.Table, logger *zap.Logger) *Calculator {
	return &Calculator{
		table:  table,
		logger: logging.OrGlobal(logger),
	}
}

// Service prices every region of a service. Any unknown region or invalid
// counter fails the whole service; no partial result is returned.
func (c *Calculator) Service(svc types.ServiceUsage) (types.ServiceCost, error) {
	result := types.ServiceCost{
		ServiceID:   svc.ServiceID,
		Name:        svc.Name,
		Total:       decimal.Zero,
		BandwidthGB: decimal.Zero,
		Requests:    decimal.Zero,
		Regions:     make([]types.RegionCost, 0, len(svc.Regions)),
	}

	for _, id := range svc.RegionIDs() {
		usage := svc.Regions[id]
		if usage.RegionID == "" {
			usage.RegionID = id
		}

		p, err := c.table.Lookup(id)
		if err != nil {
			return types.ServiceCost{}, errors.Wrapf(errors.TypeUnknownRegion, err, "service %q", svc.Name).
				WithContext("service_id", svc.ServiceID)
		}

		rc, err := Region(usage, p)
		if err != nil {
			return types.ServiceCost{}, errors.Wrapf(errors.TypeInvalidUsage, err, "service %q", svc.Name).
				WithContext("service_id", svc.ServiceID)
		}

		result.BandwidthGB = result.BandwidthGB.Add(usage.BandwidthGB)
		result.Requests = result.Requests.Add(usage.Requests)
		result.Total = result.Total.Add(rc.Total)
		result.Regions = append(result.Regions, rc)

		c.logger.Debug("priced region",
			zap.String("service", svc.Name),
			zap.String("region", id),
			zap.String("bandwidth_gb", usage.BandwidthGB.String()),
			zap.String("requests", usage.Requests.String()),
			zap.String("bandwidth_cost", rc.BandwidthCost.String()),
			zap.String("request_cost", rc.RequestCost.String()),
			zap.String("total", rc.Total.String()),
		)
	}

	return result, nil
}

// Services prices each service in order, stopping at the first error
func (c *Calculator) Services(services []types.ServiceUsage) ([]types.ServiceCost, error) {
	results := make([]types.ServiceCost, 0, len(services))
	for _, svc := range services {
		sc, err := c.Service(svc)
		if err != nil {
			return nil, err
		}
		results = append(results, sc)
	}
	return results, nil
}
