package catalog

import (
	"testing"

	"github.com/specwave/spec-core/internal/spec"
)

func loadBuiltins(t *testing.T) *spec.Store {
	t.Helper()

	store := spec.NewStore()
	loader := spec.NewLoader(store)
	loader.Add(Robots(), Cameras(), Sensors(), Construction())

	report := loader.Run()
	if !report.OK() {
		t.Fatalf("builtin discovery produced diagnostics: %+v", report)
	}
	return store
}

func TestBuiltinSpecsAreValid(t *testing.T) {
	for _, contributor := range []spec.Contributor{Robots(), Cameras(), Sensors(), Construction()} {
		specs, err := contributor.Specs()
		if err != nil {
			t.Fatalf("%s: %v", contributor.Name(), err)
		}
		if len(specs) == 0 {
			t.Fatalf("%s produced no specs", contributor.Name())
		}
		for _, s := range specs {
			if err := spec.Validate(s); err != nil {
				t.Errorf("%s: %s: %v", contributor.Name(), s.ID, err)
			}
		}
	}
}

func TestBuiltinSpecsRegisterWithoutCollisions(t *testing.T) {
	store := loadBuiltins(t)

	want := []string{
		"dji/tello", "boston-dynamics/spot", "kuka/kr3",
		"universal-robots/ur5e", "unitree/go1", "custom/so101",
		"generic/camera", "generic/ip-camera", "generic/nvr",
		"generic/webcam", "generic/rtsp-camera", "uniview/nvr",
		"intel/realsense-d435", "velodyne/puck", "stereolabs/zed2",
		"generic/excavator", "caterpillar/320", "generic/security_camera",
		"generic/security_drone", "ai/perimeter_guard", "infrastructure/headquarters",
	}
	if store.Len() != len(want) {
		t.Errorf("store holds %d specs, want %d", store.Len(), len(want))
	}
	for _, id := range want {
		if !store.Has(id) {
			t.Errorf("builtin spec %s not registered", id)
		}
	}
}

func TestBuiltinDeploymentModes(t *testing.T) {
	store := loadBuiltins(t)

	tests := []struct {
		id   string
		want spec.DeploymentMode
	}{
		{"dji/tello", spec.ModeHybrid},
		{"custom/so101", spec.ModeHybrid},
		{"unitree/go1", spec.ModeHybrid},
		{"universal-robots/ur5e", spec.ModeDigitalOnly},
		{"generic/ip-camera", spec.ModeHybrid},
		{"generic/nvr", spec.ModeHardwareOnly},
		{"generic/webcam", spec.ModeHardwareOnly},
		{"boston-dynamics/spot", spec.ModeSpecificationOnly},
		{"kuka/kr3", spec.ModeSpecificationOnly},
		{"intel/realsense-d435", spec.ModeSpecificationOnly},
		{"velodyne/puck", spec.ModeSpecificationOnly},
		{"stereolabs/zed2", spec.ModeSpecificationOnly},
		{"generic/excavator", spec.ModeDigitalOnly},
		{"caterpillar/320", spec.ModeDigitalOnly},
		{"generic/security_camera", spec.ModeHybrid},
		{"generic/security_drone", spec.ModeHybrid},
		{"ai/perimeter_guard", spec.ModeDigitalOnly},
		{"infrastructure/headquarters", spec.ModeDigitalOnly},
	}
	for _, tt := range tests {
		s, ok := store.Get(tt.id)
		if !ok {
			t.Errorf("%s: not registered", tt.id)
			continue
		}
		if got := spec.Classify(s.Flags); got != tt.want {
			t.Errorf("%s: mode = %s, want %s", tt.id, got, tt.want)
		}
	}
}

func TestGenericFallbackTargets(t *testing.T) {
	store := loadBuiltins(t)
	resolver := spec.NewResolver(store)

	// An unknown IP camera falls back to the generic entry rather than a
	// synthesized stub.
	res := resolver.Resolve("acme/cam-9000", "ip_camera")
	if res.Source != spec.ResolvedGeneric {
		t.Fatalf("source = %v, want generic", res.Source)
	}
	if res.Spec.ID != "generic/ip-camera" {
		t.Errorf("resolved %s, want generic/ip-camera", res.Spec.ID)
	}
	if !res.Spec.HasHardwareDriver || !res.Spec.HasDigitalAsset {
		t.Error("generic ip-camera fallback should carry driver and asset")
	}

	res = resolver.Resolve("acme/lens", "camera")
	if res.Source != spec.ResolvedGeneric || res.Spec.ID != "generic/camera" {
		t.Errorf("camera fallback resolved (%s, %v), want generic/camera via generic", res.Spec.ID, res.Source)
	}
}

func TestBuiltinRediscoveryIsIdempotent(t *testing.T) {
	store := spec.NewStore()
	loader := spec.NewLoader(store)
	loader.Add(Robots(), Cameras(), Sensors(), Construction())

	first := loader.Run()
	if !first.OK() {
		t.Fatalf("first run: %+v", first)
	}
	before := store.List()

	second := loader.Run()
	if !second.OK() {
		t.Fatalf("second run: %+v", second)
	}
	if second.Registered != 0 {
		t.Errorf("second run registered %d new specs, want 0", second.Registered)
	}

	after := store.List()
	if len(before) != len(after) {
		t.Fatalf("store size changed across runs: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i].ID != after[i].ID {
			t.Errorf("order changed at %d: %s -> %s", i, before[i].ID, after[i].ID)
		}
	}
}

func TestCaterpillarExtendsGenericExcavator(t *testing.T) {
	store := loadBuiltins(t)

	cat, ok := store.Get("caterpillar/320")
	if !ok {
		t.Fatal("caterpillar/320 not registered")
	}
	if cat.Manufacturer != "Caterpillar" {
		t.Errorf("manufacturer = %q, want Caterpillar", cat.Manufacturer)
	}
	// The 320 shares the generic excavator's command surface and adds
	// manufacturer capabilities on top.
	for _, cmd := range []string{"bucket_dig", "emergency_stop", "fuel_level"} {
		if !cat.SupportsCommand(cmd) {
			t.Errorf("caterpillar/320 should support %q", cmd)
		}
	}
	if !cat.ExtendedCapabilities["has_grade_control"] {
		t.Error("caterpillar/320 should declare grade control")
	}

	generic, ok := store.Get("generic/excavator")
	if !ok {
		t.Fatal("generic/excavator not registered")
	}
	if generic.ExtendedCapabilities["has_grade_control"] {
		t.Error("generic excavator must not inherit Caterpillar capabilities")
	}
}

func TestSecurityDroneProtocols(t *testing.T) {
	store := loadBuiltins(t)

	drone, ok := store.Get("generic/security_drone")
	if !ok {
		t.Fatal("generic/security_drone not registered")
	}
	if _, ok := drone.Protocol("mavlink"); !ok {
		t.Error("security drone should declare a mavlink protocol")
	}
	if mode := spec.Classify(drone.Flags); mode != spec.ModeHybrid {
		t.Errorf("mode = %s, want %s", mode, spec.ModeHybrid)
	}
}

func TestTelloCommandSurface(t *testing.T) {
	store := loadBuiltins(t)

	tello, ok := store.Get("dji/tello")
	if !ok {
		t.Fatal("dji/tello not registered")
	}
	for _, cmd := range []string{"takeoff", "land", "streamon", "battery?"} {
		if !tello.SupportsCommand(cmd) {
			t.Errorf("tello should support %q", cmd)
		}
	}
	if tello.SupportsCommand("warp_drive") {
		t.Error("tello should not support warp_drive")
	}
	if _, ok := tello.Protocol("udp"); !ok {
		t.Error("tello should declare a udp protocol")
	}
}
