package spec

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Spec IDs are two slash-separated segments: <namespace>/<name>.
// Each segment is lowercase alphanumeric with interior hyphens or
// underscores ("boston-dynamics/spot", "generic/ip-camera").
const idPattern = `^[a-z0-9]+(?:[-_][a-z0-9]+)*/[a-z0-9]+(?:[-_][a-z0-9]+)*$`

var idRegex = regexp.MustCompile(idPattern)

// Well-known namespaces for specs that do not belong to a manufacturer.
const (
	NamespaceGeneric        = "generic"
	NamespaceProps          = "props"
	NamespaceLandmarks      = "landmarks"
	NamespaceInfrastructure = "infrastructure"
	NamespaceCustom         = "custom"
)

// ValidateID checks that an identifier matches the required
// <namespace>/<name> pattern.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty", ErrInvalidIdentifier)
	}
	if !idRegex.MatchString(id) {
		return fmt.Errorf("%w: %q must match <namespace>/<name>", ErrInvalidIdentifier, id)
	}
	return nil
}

// Validate performs full validation of a spec for registration through the
// discovery or API surfaces: a well-formed ID plus the display fields every
// catalogue entry needs.
func Validate(s *DeviceSpec) error {
	if s == nil {
		return ErrInvalidSpec
	}
	if err := ValidateID(s.ID); err != nil {
		return err
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: %s has no name", ErrInvalidSpec, s.ID)
	}
	if strings.TrimSpace(s.Category) == "" {
		return fmt.Errorf("%w: %s has no category", ErrInvalidSpec, s.ID)
	}
	return nil
}

// SplitID splits an identifier into its namespace and name segments.
// Returns empty strings when the ID has no slash.
func SplitID(id string) (namespace, name string) {
	ns, n, ok := strings.Cut(id, "/")
	if !ok {
		return "", id
	}
	return ns, n
}

// HumanizeID derives a display name from an identifier:
// "unknown/pan-tilt_cam" becomes "Unknown Pan Tilt Cam".
func HumanizeID(id string) string {
	words := strings.NewReplacer("/", " ", "-", " ", "_", " ").Replace(id)
	// cases.Caser carries internal state, so build one per call rather
	// than sharing a package-level instance across goroutines.
	return cases.Title(language.English).String(strings.Join(strings.Fields(words), " "))
}

// categoryKeywords maps categories to ID substrings that suggest them.
// Checked in a fixed order so inference is deterministic.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"drone", []string{"drone", "quadcopter", "uav", "tello", "mavic"}},
	{"ip_camera", []string{"ipcamera", "ip-camera", "ipcam", "nvr"}},
	{"camera", []string{"camera", "cam", "webcam"}},
	{"sensor", []string{"sensor", "lidar", "radar", "imu", "gps"}},
	{"robotic_arm", []string{"arm", "manipulator"}},
	{"quadruped", []string{"spot", "quadruped", "go1", "go2"}},
	{"ground_robot", []string{"robot", "rover", "agv", "amr"}},
}

// InferCategory guesses a category from keywords in the identifier.
// Returns "" when nothing matches.
func InferCategory(id string) string {
	lower := strings.ToLower(id)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return ""
}

// GenericIDForCategory builds the identifier of the category-level generic
// spec. Category names use underscores ("ip_camera"); ID name segments use
// hyphens, so the candidate for "ip_camera" is "generic/ip-camera".
func GenericIDForCategory(category string) string {
	return NamespaceGeneric + "/" + strings.ReplaceAll(category, "_", "-")
}
