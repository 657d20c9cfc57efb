package spec

import (
	"sort"
	"strings"
)

// Query is a read-only convenience layer over the Store and classifier.
// It holds no state of its own: every call reflects the Store's current
// contents.
type Query struct {
	store *Store
}

// NewQuery creates a query facade over the given store.
func NewQuery(store *Store) *Query {
	return &Query{store: store}
}

// ByFlag returns all specs whose core flags satisfy the predicate,
// in registration order.
func (q *Query) ByFlag(predicate func(Flags) bool) []*DeviceSpec {
	var results []*DeviceSpec
	for _, s := range q.store.List() {
		if predicate(s.Flags) {
			results = append(results, s)
		}
	}
	return results
}

// ByDeploymentMode returns all specs that classify to the given mode.
func (q *Query) ByDeploymentMode(mode DeploymentMode) []*DeviceSpec {
	return q.ByFlag(func(f Flags) bool {
		return Classify(f) == mode
	})
}

// Complete returns all specs with driver, asset, and simulation model.
func (q *Query) Complete() []*DeviceSpec {
	return q.ByFlag(func(f Flags) bool {
		return f.HasHardwareDriver && f.HasDigitalAsset && f.HasSimulationModel
	})
}

// WithHardwareDriver returns all specs that declare a hardware driver.
func (q *Query) WithHardwareDriver() []*DeviceSpec {
	return q.ByFlag(func(f Flags) bool { return f.HasHardwareDriver })
}

// WithDigitalAsset returns all specs that declare a digital asset.
func (q *Query) WithDigitalAsset() []*DeviceSpec {
	return q.ByFlag(func(f Flags) bool { return f.HasDigitalAsset })
}

// WithSimulationModel returns all specs that declare a simulation model.
func (q *Query) WithSimulationModel() []*DeviceSpec {
	return q.ByFlag(func(f Flags) bool { return f.HasSimulationModel })
}

// ByManufacturer returns all specs from one manufacturer (case-insensitive).
func (q *Query) ByManufacturer(manufacturer string) []*DeviceSpec {
	var results []*DeviceSpec
	for _, s := range q.store.List() {
		if strings.EqualFold(s.Manufacturer, manufacturer) {
			results = append(results, s)
		}
	}
	return results
}

// ByCapability returns all specs declaring a functional capability with
// the given name.
func (q *Query) ByCapability(name string) []*DeviceSpec {
	var results []*DeviceSpec
	for _, s := range q.store.List() {
		if _, ok := s.Capability(name); ok {
			results = append(results, s)
		}
	}
	return results
}

// ByCommand returns all specs supporting the given command through any
// functional capability.
func (q *Query) ByCommand(command string) []*DeviceSpec {
	var results []*DeviceSpec
	for _, s := range q.store.List() {
		if s.SupportsCommand(command) {
			results = append(results, s)
		}
	}
	return results
}

// BySoftwareCapability returns all specs with the named software
// capability available (core flag or extended capability).
func (q *Query) BySoftwareCapability(name string) []*DeviceSpec {
	var results []*DeviceSpec
	for _, s := range q.store.List() {
		if s.HasCapability(name) {
			results = append(results, s)
		}
	}
	return results
}

// Search matches specs whose ID, name, manufacturer, or category contains
// the query string, case-insensitively.
func (q *Query) Search(query string) []*DeviceSpec {
	needle := strings.ToLower(query)
	var results []*DeviceSpec
	for _, s := range q.store.List() {
		if strings.Contains(strings.ToLower(s.ID), needle) ||
			strings.Contains(strings.ToLower(s.Name), needle) ||
			strings.Contains(strings.ToLower(s.Manufacturer), needle) ||
			strings.Contains(strings.ToLower(s.Category), needle) {
			results = append(results, s)
		}
	}
	return results
}

// Manufacturers returns all distinct manufacturers, sorted.
func (q *Query) Manufacturers() []string {
	seen := make(map[string]struct{})
	for _, s := range q.store.List() {
		if s.Manufacturer != "" {
			seen[s.Manufacturer] = struct{}{}
		}
	}
	return sortedSetKeys(seen)
}

// Commands returns every command supported by any spec, sorted.
func (q *Query) Commands() []string {
	seen := make(map[string]struct{})
	for _, s := range q.store.List() {
		for _, cmd := range s.AllCommands() {
			seen[cmd] = struct{}{}
		}
	}
	return sortedSetKeys(seen)
}

// Stats summarises registry contents for diagnostics and telemetry.
type Stats struct {
	TotalSpecs     int                    `json:"total_specs"`
	Complete       int                    `json:"complete"`
	ByCategory     map[string]int         `json:"by_category"`
	ByManufacturer map[string]int         `json:"by_manufacturer"`
	ByMode         map[DeploymentMode]int `json:"by_deployment_mode"`
}

// Stats returns current registry statistics.
func (q *Query) Stats() Stats {
	specs := q.store.List()
	stats := Stats{
		TotalSpecs:     len(specs),
		ByCategory:     make(map[string]int),
		ByManufacturer: make(map[string]int),
		ByMode:         make(map[DeploymentMode]int),
	}
	for _, s := range specs {
		stats.ByCategory[s.Category]++
		if s.Manufacturer != "" {
			stats.ByManufacturer[s.Manufacturer]++
		}
		stats.ByMode[Classify(s.Flags)]++
		if s.IsComplete() {
			stats.Complete++
		}
	}
	return stats
}

// sortedKeys returns the keys of a string-keyed bool map, sorted.
func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedSetKeys returns the keys of a string set, sorted.
func sortedSetKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
