package spec

// Flags are the three core capability flags of a device specification.
// They declare which implementations exist for the device and are the
// only inputs to deployment-mode classification.
type Flags struct {
	HasHardwareDriver  bool `json:"has_hardware_driver" yaml:"has_hardware_driver"`
	HasDigitalAsset    bool `json:"has_digital_asset" yaml:"has_digital_asset"`
	HasSimulationModel bool `json:"has_simulation_model" yaml:"has_simulation_model"`
}

// DeviceSpec is a declarative description of a device or virtual asset:
// its identity, what it can do, how to reach it, and which implementations
// (driver, digital asset, simulation model) are available for it.
//
// Specs are immutable from the caller's perspective. The Store hands out
// clones, so a spec obtained from any query can be modified freely without
// affecting the registry.
type DeviceSpec struct {
	// Identity. ID is globally unique in the form <namespace>/<name>,
	// e.g. "dji/tello" or "generic/ip-camera".
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Category     string `json:"category" yaml:"category"`
	Manufacturer string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Model        string `json:"model,omitempty" yaml:"model,omitempty"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`

	// Core capability flags, inlined so documents read flat.
	Flags `yaml:",inline"`

	// ExtendedCapabilities is an open map of non-core capability flags
	// (e.g. "has_ros_driver"). Never consulted by the classifier.
	ExtendedCapabilities map[string]bool `json:"extended_capabilities,omitempty" yaml:"extended_capabilities,omitempty"`

	// Implementation references. Opaque strings naming driver/asset
	// implementations; the registry stores and exposes them but never
	// loads or invokes them.
	DriverClass        string   `json:"driver_class,omitempty" yaml:"driver_class,omitempty"`
	AssetClass         string   `json:"asset_class,omitempty" yaml:"asset_class,omitempty"`
	FallbackAssetClass string   `json:"fallback_asset_class,omitempty" yaml:"fallback_asset_class,omitempty"`
	SimulationModels   []string `json:"simulation_models,omitempty" yaml:"simulation_models,omitempty"`

	// Functional capabilities: what the device can do, independent of
	// what is implemented.
	Capabilities []Capability `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`

	// Protocols describe how to reach the device.
	Protocols []Protocol `json:"protocols,omitempty" yaml:"protocols,omitempty"`

	// Connection and interactive setup metadata, consumed by external
	// configuration UIs.
	Connection  *ConnectionInfo `json:"connection,omitempty" yaml:"connection,omitempty"`
	SetupFields []SetupField    `json:"setup_fields,omitempty" yaml:"setup_fields,omitempty"`

	// Specs holds free-form technical specifications (max altitude,
	// payload, resolution, ...).
	Specs map[string]any `json:"specs,omitempty" yaml:"specs,omitempty"`

	DocumentationURL string `json:"documentation_url,omitempty" yaml:"documentation_url,omitempty"`
}

// Capability describes one functional capability and the commands it exposes.
type Capability struct {
	Name        string   `json:"name" yaml:"name"`
	Commands    []string `json:"commands" yaml:"commands"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// SupportsCommand reports whether this capability exposes the given command.
func (c Capability) SupportsCommand(command string) bool {
	for _, cmd := range c.Commands {
		if cmd == command {
			return true
		}
	}
	return false
}

// Protocol describes a communication protocol supported by a device.
type Protocol struct {
	Type       string         `json:"type" yaml:"type"`
	Port       int            `json:"port,omitempty" yaml:"port,omitempty"`
	Baudrate   int            `json:"baudrate,omitempty" yaml:"baudrate,omitempty"`
	Commands   []string       `json:"commands,omitempty" yaml:"commands,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// ConnectionInfo describes how a device is physically connected.
type ConnectionInfo struct {
	Type              string   `json:"type" yaml:"type"`
	DefaultIP         string   `json:"default_ip,omitempty" yaml:"default_ip,omitempty"`
	DefaultPort       int      `json:"default_port,omitempty" yaml:"default_port,omitempty"`
	SetupInstructions []string `json:"setup_instructions,omitempty" yaml:"setup_instructions,omitempty"`
}

// SetupField is one field of the interactive setup flow for a device.
type SetupField struct {
	Name     string   `json:"name" yaml:"name"`
	Type     string   `json:"type" yaml:"type"` // string, int, float, boolean, select, ipv4
	Label    string   `json:"label" yaml:"label"`
	Default  any      `json:"default,omitempty" yaml:"default,omitempty"`
	Required bool     `json:"required" yaml:"required"`
	Options  []string `json:"options,omitempty" yaml:"options,omitempty"`
	Help     string   `json:"help,omitempty" yaml:"help,omitempty"`
}

// Core capability flag names, as used in Missing/Available implementation
// lists and the extended-capability style lookups.
const (
	FlagHardwareDriver  = "hardware_driver"
	FlagDigitalAsset    = "digital_asset"
	FlagSimulationModel = "simulation_model"
)

// Clone creates a complete independent copy of the spec. All map and slice
// fields are cloned so modifications to the copy do not affect the original.
// This is what keeps Store contents isolated from callers.
func (s *DeviceSpec) Clone() *DeviceSpec {
	if s == nil {
		return nil
	}

	cpy := *s // value fields

	if s.ExtendedCapabilities != nil {
		cpy.ExtendedCapabilities = make(map[string]bool, len(s.ExtendedCapabilities))
		for k, v := range s.ExtendedCapabilities {
			cpy.ExtendedCapabilities[k] = v
		}
	}

	if s.SimulationModels != nil {
		cpy.SimulationModels = make([]string, len(s.SimulationModels))
		copy(cpy.SimulationModels, s.SimulationModels)
	}

	if s.Capabilities != nil {
		cpy.Capabilities = make([]Capability, len(s.Capabilities))
		for i, c := range s.Capabilities {
			cc := c
			if c.Commands != nil {
				cc.Commands = make([]string, len(c.Commands))
				copy(cc.Commands, c.Commands)
			}
			cpy.Capabilities[i] = cc
		}
	}

	if s.Protocols != nil {
		cpy.Protocols = make([]Protocol, len(s.Protocols))
		for i, p := range s.Protocols {
			pc := p
			if p.Commands != nil {
				pc.Commands = make([]string, len(p.Commands))
				copy(pc.Commands, p.Commands)
			}
			pc.Parameters = deepCopyMap(p.Parameters)
			cpy.Protocols[i] = pc
		}
	}

	if s.Connection != nil {
		conn := *s.Connection
		if s.Connection.SetupInstructions != nil {
			conn.SetupInstructions = make([]string, len(s.Connection.SetupInstructions))
			copy(conn.SetupInstructions, s.Connection.SetupInstructions)
		}
		cpy.Connection = &conn
	}

	if s.SetupFields != nil {
		cpy.SetupFields = make([]SetupField, len(s.SetupFields))
		for i, f := range s.SetupFields {
			fc := f
			if f.Options != nil {
				fc.Options = make([]string, len(f.Options))
				copy(fc.Options, f.Options)
			}
			fc.Default = deepCopyValue(f.Default)
			cpy.SetupFields[i] = fc
		}
	}

	cpy.Specs = deepCopyMap(s.Specs)

	return &cpy
}

// deepCopyMap creates a deep copy of a map[string]any.
// Nested maps and slices are recursively copied.
func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	cpy := make(map[string]any, len(m))
	for k, v := range m {
		cpy[k] = deepCopyValue(v)
	}
	return cpy
}

// deepCopyValue recursively copies a value, handling nested maps and slices.
func deepCopyValue(v any) any {
	if v == nil {
		return nil
	}
	switch val := v.(type) {
	case map[string]any:
		return deepCopyMap(val)
	case []any:
		cpy := make([]any, len(val))
		for i, elem := range val {
			cpy[i] = deepCopyValue(elem)
		}
		return cpy
	default:
		// Primitives (string, bool, int, float64, etc.) are safe to copy by value
		return v
	}
}

// AllCommands returns every command supported by this device across all
// functional capabilities, deduplicated, in first-seen order.
func (s *DeviceSpec) AllCommands() []string {
	seen := make(map[string]struct{})
	var commands []string
	for _, c := range s.Capabilities {
		for _, cmd := range c.Commands {
			if _, ok := seen[cmd]; ok {
				continue
			}
			seen[cmd] = struct{}{}
			commands = append(commands, cmd)
		}
	}
	return commands
}

// SupportsCommand reports whether any capability exposes the given command.
func (s *DeviceSpec) SupportsCommand(command string) bool {
	for _, c := range s.Capabilities {
		if c.SupportsCommand(command) {
			return true
		}
	}
	return false
}

// Capability returns the functional capability with the given name,
// or false if the device does not declare it.
func (s *DeviceSpec) Capability(name string) (Capability, bool) {
	for _, c := range s.Capabilities {
		if c.Name == name {
			return c, true
		}
	}
	return Capability{}, false
}

// Protocol returns the protocol entry with the given type,
// or false if the device does not declare it.
func (s *DeviceSpec) Protocol(protocolType string) (Protocol, bool) {
	for _, p := range s.Protocols {
		if p.Type == protocolType {
			return p, true
		}
	}
	return Protocol{}, false
}

// HasCapability reports whether a named software capability is available.
// The three core flag names resolve to the core flags; anything else is
// looked up in the extended-capabilities map.
func (s *DeviceSpec) HasCapability(name string) bool {
	switch name {
	case FlagHardwareDriver:
		return s.HasHardwareDriver
	case FlagDigitalAsset:
		return s.HasDigitalAsset
	case FlagSimulationModel:
		return s.HasSimulationModel
	}
	return s.ExtendedCapabilities[name]
}

// CapabilityFlags returns all software capabilities as a single map:
// the three core flags plus every extended capability.
func (s *DeviceSpec) CapabilityFlags() map[string]bool {
	flags := map[string]bool{
		FlagHardwareDriver:  s.HasHardwareDriver,
		FlagDigitalAsset:    s.HasDigitalAsset,
		FlagSimulationModel: s.HasSimulationModel,
	}
	for k, v := range s.ExtendedCapabilities {
		flags[k] = v
	}
	return flags
}

// AvailableImplementations lists the implementation types declared
// available: core flags that are true, then extended capabilities that
// are true (sorted for stable output).
func (s *DeviceSpec) AvailableImplementations() []string {
	var impls []string
	if s.HasHardwareDriver {
		impls = append(impls, FlagHardwareDriver)
	}
	if s.HasDigitalAsset {
		impls = append(impls, FlagDigitalAsset)
	}
	if s.HasSimulationModel {
		impls = append(impls, FlagSimulationModel)
	}
	for _, name := range sortedKeys(s.ExtendedCapabilities) {
		if s.ExtendedCapabilities[name] {
			impls = append(impls, name)
		}
	}
	return impls
}

// MissingImplementations lists the core flags that are currently false.
func (s *DeviceSpec) MissingImplementations() []string {
	var missing []string
	if !s.HasHardwareDriver {
		missing = append(missing, FlagHardwareDriver)
	}
	if !s.HasDigitalAsset {
		missing = append(missing, FlagDigitalAsset)
	}
	if !s.HasSimulationModel {
		missing = append(missing, FlagSimulationModel)
	}
	return missing
}

// IsComplete reports whether all three core implementations exist.
func (s *DeviceSpec) IsComplete() bool {
	return s.HasHardwareDriver && s.HasDigitalAsset && s.HasSimulationModel
}
