// Package determinism provides helpers for reproducible output.
// Map iteration and content ids must go through these so that the same
// usage and rates always render and hash identically.
package determinism

import (
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// SortedKeys returns the keys of m in ascending order
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// RangeSorted calls fn for each entry of m in key order until fn returns false
func RangeSorted[K cmp.Ordered, V any](m map[K]V, fn func(K, V) bool) {
	for _, k := range SortedKeys(m) {
		if !fn(k, m[k]) {
			return
		}
	}
}

// StableID is a short content-derived identifier
type StableID string

// IDGenerator derives stable ids within a namespace
type IDGenerator struct {
	namespace string
}

// NewIDGenerator creates an ID generator with a namespace
func NewIDGenerator(namespace string) *IDGenerator {
	return &IDGenerator{namespace: namespace}
}

// Generate hashes the namespace and parts into a 16 hex digit id.
// Parts are NUL separated so ("ab", "c") and ("a", "bc") differ.
func (g *IDGenerator) Generate(parts ...string) StableID {
	h := sha256.New()
	h.Write([]byte(g.namespace))
	h.Write([]byte{0})
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return StableID(hex.EncodeToString(h.Sum(nil))[:16])
}
