package spec

// Deployment planning resolves a spec's implementation references into the
// concrete driver/asset identifiers an external loader should instantiate,
// applying fallback asset classes where the preferred implementation is
// missing. The registry never performs the instantiation itself.

// categoryAssetFallbacks maps categories to generic asset class references
// used when a spec declares no asset of its own.
var categoryAssetFallbacks = map[string]string{
	"drone":        "assets.GenericDrone",
	"ground_robot": "assets.GenericGroundRobot",
	"robotic_arm":  "assets.GenericRoboticArm",
	"quadruped":    "assets.GenericQuadruped",
	"ip_camera":    "assets.GenericIPCamera",
	"camera":       "assets.GenericCamera",
	"sensor":       "assets.GenericSensor",
}

// genericAssetClass is the last-resort asset reference for categories with
// no dedicated generic asset.
const genericAssetClass = "assets.GenericDevice"

// fallbackAssetForCategory returns the generic asset class for a category.
func fallbackAssetForCategory(category string) string {
	if class, ok := categoryAssetFallbacks[category]; ok {
		return class
	}
	return genericAssetClass
}

// AssetClassFor resolves the digital-asset implementation reference for a
// spec, falling through spec-declared fallback and category generics. The
// result is always non-empty: every device can at least be represented by
// a generic asset.
func AssetClassFor(s *DeviceSpec) string {
	if s.HasDigitalAsset && s.AssetClass != "" {
		return s.AssetClass
	}
	if s.FallbackAssetClass != "" {
		return s.FallbackAssetClass
	}
	return fallbackAssetForCategory(s.Category)
}

// DriverClassFor resolves the hardware-driver implementation reference.
// Drivers are device-specific; there is no generic fallback.
func DriverClassFor(s *DeviceSpec) (string, bool) {
	if s.HasHardwareDriver && s.DriverClass != "" {
		return s.DriverClass, true
	}
	return "", false
}

// Plan describes how a device should be deployed given its available
// implementations and the caller's requirements.
type Plan struct {
	DeviceID string         `json:"device_id"`
	Mode     DeploymentMode `json:"deployment_mode"`

	DriverClass      string   `json:"driver_class,omitempty"`
	AssetClass       string   `json:"asset_class,omitempty"`
	SimulationModels []string `json:"simulation_models,omitempty"`

	// Fallbacks records components where a substitute was used instead of
	// the spec's own implementation.
	Fallbacks map[string]string `json:"fallbacks,omitempty"`

	Available []string `json:"available_implementations,omitempty"`
	Missing   []string `json:"missing_implementations,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
	Errors    []string `json:"errors,omitempty"`

	// FinalMode is the mode actually achievable with the resolved
	// components; "unavailable" when nothing usable exists and the
	// requirements cannot be met.
	FinalMode string `json:"final_mode"`
}

// BuildPlan creates a deployment plan for a spec. Requirements name the
// implementation types the caller insists on (FlagHardwareDriver,
// FlagDigitalAsset, FlagSimulationModel); missing required components are
// recorded as plan errors, not returned as Go errors.
func BuildPlan(s *DeviceSpec, requirements ...string) *Plan {
	required := make(map[string]bool, len(requirements))
	for _, req := range requirements {
		required[req] = true
	}

	plan := &Plan{
		DeviceID:  s.ID,
		Mode:      Classify(s.Flags),
		Fallbacks: make(map[string]string),
		Available: s.AvailableImplementations(),
		Missing:   s.MissingImplementations(),
	}

	if required[FlagHardwareDriver] || s.HasHardwareDriver {
		if driver, ok := DriverClassFor(s); ok {
			plan.DriverClass = driver
		} else {
			plan.Errors = append(plan.Errors, "hardware driver required but not available")
			plan.Warnings = append(plan.Warnings, "device will operate in digital-only mode")
		}
	}

	if required[FlagDigitalAsset] || s.HasDigitalAsset {
		asset := AssetClassFor(s)
		plan.AssetClass = asset
		if asset != s.AssetClass {
			plan.Fallbacks[FlagDigitalAsset] = asset
			plan.Warnings = append(plan.Warnings, "using fallback asset class: "+asset)
		}
	}

	if required[FlagSimulationModel] || s.HasSimulationModel {
		if len(s.SimulationModels) > 0 {
			plan.SimulationModels = append([]string(nil), s.SimulationModels...)
		} else {
			plan.Warnings = append(plan.Warnings, "simulation models not available")
		}
	}

	switch {
	case plan.DriverClass != "" && plan.AssetClass != "":
		plan.FinalMode = string(ModeHybrid)
	case plan.DriverClass != "":
		plan.FinalMode = string(ModeHardwareOnly)
	case plan.AssetClass != "":
		plan.FinalMode = string(ModeDigitalOnly)
	default:
		plan.FinalMode = "unavailable"
		plan.Errors = append(plan.Errors, "no usable implementations available")
	}

	return plan
}

// ModeRecommendation is one human-readable deployment suggestion.
type ModeRecommendation struct {
	Mode        string   `json:"mode"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits,omitempty"`
	Limitations []string `json:"limitations,omitempty"`
	Simulators  []string `json:"simulators,omitempty"`
}

// DeploymentRecommendations lists the deployment modes a spec supports,
// with the trade-offs of each. Informational output for CLIs and UIs.
func DeploymentRecommendations(s *DeviceSpec) []ModeRecommendation {
	var recs []ModeRecommendation

	if s.HasHardwareDriver && s.HasDigitalAsset {
		recs = append(recs, ModeRecommendation{
			Mode:        string(ModeHybrid),
			Description: "Full physical + digital twin deployment",
			Benefits:    []string{"real hardware control", "digital twin visualisation", "simulation fallback"},
		})
	}
	if s.HasHardwareDriver {
		recs = append(recs, ModeRecommendation{
			Mode:        string(ModeHardwareOnly),
			Description: "Physical hardware control only",
			Benefits:    []string{"direct hardware control", "minimal dependencies"},
			Limitations: []string{"no digital twin", "no simulation"},
		})
	}
	if s.HasDigitalAsset {
		recs = append(recs, ModeRecommendation{
			Mode:        string(ModeDigitalOnly),
			Description: "Digital twin and simulation only",
			Benefits:    []string{"safe testing", "visualisation", "no hardware required"},
			Limitations: []string{"no real hardware control"},
		})
	}
	if s.HasSimulationModel {
		recs = append(recs, ModeRecommendation{
			Mode:        "simulation",
			Description: "Simulation environment testing",
			Benefits:    []string{"safe testing", "physics simulation", "scenario testing"},
			Simulators:  append([]string(nil), s.SimulationModels...),
		})
	}

	return recs
}
