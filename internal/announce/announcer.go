package announce

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/specwave/spec-core/internal/infrastructure/mqtt"
	"github.com/specwave/spec-core/internal/spec"
)

// Bus is the subset of the MQTT client the announcer needs. Satisfied by
// *mqtt.Client; tests substitute a recording fake.
type Bus interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
	Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error
	Topics() mqtt.Topics
}

// Announcer publishes registry events to the announcement bus.
type Announcer struct {
	bus    Bus
	qos    byte
	logger spec.Logger
}

// New creates an announcer over the given bus. QoS applies to every
// message the announcer publishes.
func New(bus Bus, qos int) *Announcer {
	return &Announcer{
		bus:    bus,
		qos:    byte(qos),
		logger: spec.NopLogger(),
	}
}

// SetLogger sets the logger for the announcer.
func (a *Announcer) SetLogger(logger spec.Logger) {
	a.logger = logger
}

// DiscoveryReport publishes a discovery run summary.
func (a *Announcer) DiscoveryReport(report *spec.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding discovery report: %w", err)
	}
	return a.bus.Publish(a.bus.Topics().DiscoveryReport(), payload, a.qos, false)
}

// specEvent is the payload for spec registration and removal events.
type specEvent struct {
	ID             string `json:"id"`
	Category       string `json:"category,omitempty"`
	DeploymentMode string `json:"deployment_mode,omitempty"`
	Timestamp      string `json:"timestamp"`
}

// SpecRegistered announces that a spec was registered or replaced.
func (a *Announcer) SpecRegistered(s *spec.DeviceSpec) error {
	event := specEvent{
		ID:             s.ID,
		Category:       s.Category,
		DeploymentMode: string(spec.Classify(s.Flags)),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding spec event: %w", err)
	}
	return a.bus.Publish(a.bus.Topics().SpecRegistered(s.ID), payload, a.qos, false)
}

// SpecRemoved announces that a spec was removed from the registry.
func (a *Announcer) SpecRemoved(id string) error {
	event := specEvent{
		ID:        id,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding spec event: %w", err)
	}
	return a.bus.Publish(a.bus.Topics().SpecRemoved(id), payload, a.qos, false)
}

// Stats publishes registry statistics, retained so new subscribers see
// the current state immediately.
func (a *Announcer) Stats(stats spec.Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encoding registry stats: %w", err)
	}
	return a.bus.Publish(a.bus.Topics().RegistryStats(), payload, a.qos, true)
}

// ServeRequests subscribes to the discovery request topic. Each request
// triggers run and publishes the resulting report. Request payloads are
// ignored; publishing anything to the topic is the trigger.
func (a *Announcer) ServeRequests(run func() *spec.Report) error {
	return a.bus.Subscribe(a.bus.Topics().DiscoveryRequest(), a.qos,
		func(topic string, _ []byte) error {
			a.logger.Info("rediscovery requested via bus", "topic", topic)
			report := run()
			if err := a.DiscoveryReport(report); err != nil {
				return fmt.Errorf("announcing requested discovery: %w", err)
			}
			return nil
		})
}
