// Package types - Usage document types
package types

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"cdn-cost/core/determinism"
)

// StatusSuccess is the only usage document status that carries data
const StatusSuccess = "success"

// RequestUnit is the number of requests in one billable request unit
const RequestUnit = 10000

// RegionUsage holds the billable counters of one service in one region
type RegionUsage struct {
	// RegionID is the billing region identifier
	RegionID string `json:"region_id"`

	// BandwidthGB is the delivered bandwidth in GB
	BandwidthGB decimal.Decimal `json:"bandwidth"`

	// Requests is the request count in units of RequestUnit
	Requests decimal.Decimal `json:"requests"`
}

// RequestCount returns the raw number of requests
func (u RegionUsage) RequestCount() decimal.Decimal {
	return u.Requests.Mul(decimal.NewFromInt(RequestUnit))
}

// ServiceUsage holds the per-region usage of one billed service
type ServiceUsage struct {
	// ServiceID is the provider's service identifier
	ServiceID string `json:"service_id"`

	// Name is the service display name
	Name string `json:"name"`

	// Regions maps region id to usage
	Regions map[string]RegionUsage `json:"regions"`
}

// regionCounters is the wire shape of a region entry
type regionCounters struct {
	Bandwidth decimal.Decimal `json:"bandwidth"`
	Requests  decimal.Decimal `json:"requests"`
}

// UnmarshalJSON decodes the wire shape, where the service object holds a
// "name" key next to one object per region.
func (s *ServiceUsage) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.Regions = make(map[string]RegionUsage, len(raw))
	for key, value := range raw {
		if key == "name" {
			if err := json.Unmarshal(value, &s.Name); err != nil {
				return fmt.Errorf("service name: %w", err)
			}
			continue
		}

		var counters regionCounters
		if err := json.Unmarshal(value, &counters); err != nil {
			return fmt.Errorf("region %q: %w", key, err)
		}
		s.Regions[key] = RegionUsage{
			RegionID:    key,
			BandwidthGB: counters.Bandwidth,
			Requests:    counters.Requests,
		}
	}
	return nil
}

// MarshalJSON encodes the wire shape accepted by UnmarshalJSON
func (s ServiceUsage) MarshalJSON() ([]byte, error) {
	raw := make(map[string]interface{}, len(s.Regions)+1)
	raw["name"] = s.Name
	for id, usage := range s.Regions {
		raw[id] = regionCounters{Bandwidth: usage.BandwidthGB, Requests: usage.Requests}
	}
	return json.Marshal(raw)
}

// RegionIDs returns the region ids in sorted order
func (s ServiceUsage) RegionIDs() []string {
	return determinism.SortedKeys(s.Regions)
}

// UsageDocument is the decoded monthly usage response
type UsageDocument struct {
	// Status is "success" when Data is valid
	Status string `json:"status"`

	// Message carries the provider's explanation on failure
	Message string `json:"msg,omitempty"`

	// Data holds the per-service usage
	Data UsageData `json:"data"`
}

// UsageData is the payload of a usage document
type UsageData struct {
	// Services maps service id to usage
	Services map[string]ServiceUsage `json:"services"`
}

// Succeeded reports whether the document status is success
func (d *UsageDocument) Succeeded() bool {
	return d.Status == StatusSuccess
}

// ServiceList returns the services with ServiceID filled in,
// ordered by name and then id.
func (d *UsageDocument) ServiceList() []ServiceUsage {
	services := make([]ServiceUsage, 0, len(d.Data.Services))
	for id, svc := range d.Data.Services {
		svc.ServiceID = id
		services = append(services, svc)
	}
	sort.Slice(services, func(i, j int) bool {
		if services[i].Name != services[j].Name {
			return services[i].Name < services[j].Name
		}
		return services[i].ServiceID < services[j].ServiceID
	})
	return services
}
