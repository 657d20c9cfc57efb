package mqtt

import "fmt"

// defaultTopicBase is used when config leaves topic_base empty.
const defaultTopicBase = "specwave"

// Topics builds SpecWave MQTT topic strings under a configurable base.
// Using these helpers keeps topic naming consistent across the codebase
// and lets deployments namespace multiple registries on one broker.
//
//	topics := mqtt.NewTopics(cfg.TopicBase)
//	topics.DiscoveryReport() // "specwave/discovery/report"
type Topics struct {
	base string
}

// NewTopics creates a topic builder rooted at base. An empty base falls
// back to "specwave".
func NewTopics(base string) Topics {
	if base == "" {
		base = defaultTopicBase
	}
	return Topics{base: base}
}

// SystemStatus returns the service status topic. Online, offline, and
// Last Will messages are all published here, retained.
//
// Example: specwave/system/status
func (t Topics) SystemStatus() string {
	return fmt.Sprintf("%s/system/status", t.base)
}

// DiscoveryReport returns the topic for discovery run summaries.
//
// Example: specwave/discovery/report
func (t Topics) DiscoveryReport() string {
	return fmt.Sprintf("%s/discovery/report", t.base)
}

// DiscoveryRequest returns the topic other services publish to in order
// to trigger a rediscovery run.
//
// Example: specwave/discovery/request
func (t Topics) DiscoveryRequest() string {
	return fmt.Sprintf("%s/discovery/request", t.base)
}

// SpecRegistered returns the event topic for a newly registered spec.
// Spec IDs already contain a slash, so the ID forms two topic levels.
//
// Example: specwave/spec/dji/tello/registered
func (t Topics) SpecRegistered(specID string) string {
	return fmt.Sprintf("%s/spec/%s/registered", t.base, specID)
}

// SpecRemoved returns the event topic for a removed spec.
//
// Example: specwave/spec/dji/tello/removed
func (t Topics) SpecRemoved(specID string) string {
	return fmt.Sprintf("%s/spec/%s/removed", t.base, specID)
}

// RegistryStats returns the topic for periodic registry statistics.
//
// Example: specwave/registry/stats
func (t Topics) RegistryStats() string {
	return fmt.Sprintf("%s/registry/stats", t.base)
}

// AllSpecEvents returns a pattern matching every spec event.
//
// Pattern: specwave/spec/#
func (t Topics) AllSpecEvents() string {
	return fmt.Sprintf("%s/spec/#", t.base)
}

// AllTopics returns a pattern matching every topic under the base.
// Use with caution, this receives all registry traffic.
//
// Pattern: specwave/#
func (t Topics) AllTopics() string {
	return fmt.Sprintf("%s/#", t.base)
}
