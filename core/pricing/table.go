// Package pricing provides the regional rate table used to price CDN usage.
// A Table is immutable once built and is passed explicitly to calculators.
package pricing

import (
	"cdn-cost/core/determinism"
	"cdn-cost/core/types"
	"cdn-cost/internal/errors"
)

var fingerprints = determinism.NewIDGenerator("cdn-cost/pricing")

// Table maps region ids to their rates
type Table struct {
	entries     map[string]types.RegionPricing
	fingerprint string
}

// NewTable builds a table from entries. Region ids must be unique and
// rates must not be negative.
func NewTable(entries []types.RegionPricing) (*Table, error) {
	t := &Table{entries: make(map[string]types.RegionPricing, len(entries))}

	for _, e := range entries {
		if e.RegionID == "" {
			return nil, errors.Config("pricing entry without region id", nil)
		}
		if _, dup := t.entries[e.RegionID]; dup {
			return nil, errors.Newf(errors.TypeConfig, "duplicate pricing for region %q", e.RegionID)
		}
		if e.BandwidthLow.IsNegative() || e.BandwidthHigh.IsNegative() || e.RequestRate.IsNegative() {
			return nil, errors.Newf(errors.TypeConfig, "negative rate for region %q", e.RegionID)
		}
		t.entries[e.RegionID] = e
	}

	t.fingerprint = t.computeFingerprint()
	return t, nil
}

// MustNewTable is NewTable for static data known to be valid
func MustNewTable(entries []types.RegionPricing) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the rates for a region
func (t *Table) Lookup(regionID string) (types.RegionPricing, error) {
	p, ok := t.entries[regionID]
	if !ok {
		return types.RegionPricing{}, errors.UnknownRegion(regionID)
	}
	return p, nil
}

// DisplayName returns the human-readable region label, or the id itself
func (t *Table) DisplayName(regionID string) string {
	if p, ok := t.entries[regionID]; ok && p.DisplayName != "" {
		return p.DisplayName
	}
	return regionID
}

// Regions returns the region ids in sorted order
func (t *Table) Regions() []string {
	return determinism.SortedKeys(t.entries)
}

// Entries returns the rate entries sorted by region id
func (t *Table) Entries() []types.RegionPricing {
	out := make([]types.RegionPricing, 0, len(t.entries))
	for _, id := range t.Regions() {
		out = append(out, t.entries[id])
	}
	return out
}

// Len returns the number of regions
func (t *Table) Len() int {
	return len(t.entries)
}

// Fingerprint is a content hash of the rates, stable across runs
func (t *Table) Fingerprint() string {
	return t.fingerprint
}

func (t *Table) computeFingerprint() string {
	parts := make([]string, 0, 4*len(t.entries))
	for _, e := range t.Entries() {
		parts = append(parts, e.RegionID, e.BandwidthLow.String(), e.BandwidthHigh.String(), e.RequestRate.String())
	}
	return string(fingerprints.Generate(parts...))
}
