package spec

// DeploymentMode classifies how a spec can be deployed, derived purely from
// the three core capability flags.
type DeploymentMode string

// DeploymentMode constants.
const (
	// ModeHybrid: hardware driver and digital asset both exist.
	ModeHybrid DeploymentMode = "hybrid"

	// ModeHardwareOnly: hardware driver exists, no digital asset.
	ModeHardwareOnly DeploymentMode = "hardware_only"

	// ModeDigitalOnly: digital asset exists, no hardware driver.
	ModeDigitalOnly DeploymentMode = "digital_only"

	// ModeSpecificationOnly: neither exists; the spec declares a device
	// without any implementation. This is a valid terminal state, not
	// an error.
	ModeSpecificationOnly DeploymentMode = "specification_only"
)

// AllDeploymentModes returns all valid deployment mode values.
func AllDeploymentModes() []DeploymentMode {
	return []DeploymentMode{
		ModeHybrid, ModeHardwareOnly, ModeDigitalOnly, ModeSpecificationOnly,
	}
}

// ValidDeploymentMode reports whether a mode string is one of the four
// terminal values.
func ValidDeploymentMode(mode DeploymentMode) bool {
	switch mode {
	case ModeHybrid, ModeHardwareOnly, ModeDigitalOnly, ModeSpecificationOnly:
		return true
	}
	return false
}

// Classify maps capability flags to a deployment mode.
//
// The mapping depends only on HasHardwareDriver and HasDigitalAsset.
// HasSimulationModel never changes the result; it is reported separately
// by Recommend for richer recommendations.
func Classify(f Flags) DeploymentMode {
	switch {
	case f.HasHardwareDriver && f.HasDigitalAsset:
		return ModeHybrid
	case f.HasHardwareDriver:
		return ModeHardwareOnly
	case f.HasDigitalAsset:
		return ModeDigitalOnly
	default:
		return ModeSpecificationOnly
	}
}

// Recommendation summarises a spec's deployment posture: its mode, whether
// simulation is available, and what is missing to reach a complete
// (driver + asset + simulation) spec. Informational only; nothing gates on it.
type Recommendation struct {
	Mode               DeploymentMode `json:"deployment_mode"`
	HasSimulationModel bool           `json:"has_simulation_model"`
	IsComplete         bool           `json:"is_complete"`
	Missing            []string       `json:"missing_implementations,omitempty"`
	Available          []string       `json:"available_implementations,omitempty"`
}

// Recommend derives the deployment recommendation for a spec.
func Recommend(s *DeviceSpec) Recommendation {
	return Recommendation{
		Mode:               Classify(s.Flags),
		HasSimulationModel: s.HasSimulationModel,
		IsComplete:         s.IsComplete(),
		Missing:            s.MissingImplementations(),
		Available:          s.AvailableImplementations(),
	}
}
