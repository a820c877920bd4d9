// Package metrics exports report totals as Prometheus gauges.
// Gauges are written in the node_exporter textfile collector format so a
// scheduled run can be scraped without running a server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"cdn-cost/core/types"
	"cdn-cost/internal/errors"
)

const namespace = "cdn_cost"

// Collector holds the report gauges
type Collector struct {
	registry *prometheus.Registry

	MonthToDate  prometheus.Gauge
	Projected    prometheus.Gauge
	DaysElapsed  prometheus.Gauge
	DaysInMonth  prometheus.Gauge
	ServiceTotal *prometheus.GaugeVec
	RegionTotal  *prometheus.GaugeVec
	BandwidthGB  *prometheus.GaugeVec
	Requests     *prometheus.GaugeVec
}

// New creates a collector on its own registry
func New() *Collector {
	return NewWithRegistry(prometheus.NewRegistry())
}

// NewWithRegistry creates a collector with all gauges registered on reg
func NewWithRegistry(reg *prometheus.Registry) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		MonthToDate: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "month_to_date",
			Help:      "Spend accumulated in the billing month so far",
		}),
		Projected: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "projected_month_total",
			Help:      "Month-to-date spend extrapolated to the full month",
		}),
		DaysElapsed: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "days_elapsed",
			Help:      "Days of the billing month already billed",
		}),
		DaysInMonth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "days_in_month",
			Help:      "Number of days in the billing month",
		}),
		ServiceTotal: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "service_total",
			Help:      "Month-to-date spend per service",
		}, []string{"service"}),
		RegionTotal: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "region_total",
			Help:      "Month-to-date spend per service and region",
		}, []string{"service", "region"}),
		BandwidthGB: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "service_bandwidth_gb",
			Help:      "Bandwidth delivered per service in GB",
		}, []string{"service"}),
		Requests: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "service_requests",
			Help:      "Requests served per service",
		}, []string{"service"}),
	}
}

// Registry returns the registry the gauges live on
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Observe sets every gauge from report, replacing earlier values
func (c *Collector) Observe(report *types.Report) {
	c.ServiceTotal.Reset()
	c.RegionTotal.Reset()
	c.BandwidthGB.Reset()
	c.Requests.Reset()

	c.MonthToDate.Set(toFloat(report.Summary.MonthToDate))
	c.Projected.Set(toFloat(report.Summary.Projected))
	c.DaysElapsed.Set(float64(report.Summary.DaysElapsed))
	c.DaysInMonth.Set(float64(report.Summary.DaysInMonth))

	for _, svc := range report.Services {
		name := svc.Name
		if name == "" {
			name = svc.ServiceID
		}
		c.ServiceTotal.WithLabelValues(name).Set(toFloat(svc.Total))
		c.BandwidthGB.WithLabelValues(name).Set(toFloat(svc.BandwidthGB))
		c.Requests.WithLabelValues(name).Set(toFloat(svc.Requests.Mul(decimal.NewFromInt(types.RequestUnit))))

		for _, rc := range svc.Regions {
			c.RegionTotal.WithLabelValues(name, rc.RegionID).Set(toFloat(rc.Total))
		}
	}
}

// WriteTextfile writes the gathered gauges to path atomically
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return errors.Wrapf(errors.TypeInternal, err, "failed to write metrics to %s", path)
	}
	return nil
}

// Export observes report and writes it to path
func Export(path string, report *types.Report) error {
	c := New()
	c.Observe(report)
	return c.WriteTextfile(path)
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
