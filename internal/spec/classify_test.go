package spec

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  DeploymentMode
	}{
		{
			name:  "driver and asset",
			flags: Flags{HasHardwareDriver: true, HasDigitalAsset: true},
			want:  ModeHybrid,
		},
		{
			name:  "driver only",
			flags: Flags{HasHardwareDriver: true},
			want:  ModeHardwareOnly,
		},
		{
			name:  "asset only",
			flags: Flags{HasDigitalAsset: true},
			want:  ModeDigitalOnly,
		},
		{
			name:  "nothing",
			flags: Flags{},
			want:  ModeSpecificationOnly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.flags); got != tt.want {
				t.Errorf("Classify(%+v) = %q, want %q", tt.flags, got, tt.want)
			}

			// The simulation flag must never change the result.
			withSim := tt.flags
			withSim.HasSimulationModel = true
			if got := Classify(withSim); got != tt.want {
				t.Errorf("Classify(%+v) = %q, want %q (simulation flag changed the mode)",
					withSim, got, tt.want)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	f := Flags{HasHardwareDriver: true, HasSimulationModel: true}
	first := Classify(f)
	for i := 0; i < 100; i++ {
		if got := Classify(f); got != first {
			t.Fatalf("Classify returned %q then %q for identical input", first, got)
		}
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name         string
		spec         *DeviceSpec
		wantMode     DeploymentMode
		wantComplete bool
		wantMissing  []string
	}{
		{
			name: "complete spec",
			spec: &DeviceSpec{
				ID:    "dji/tello",
				Flags: Flags{HasHardwareDriver: true, HasDigitalAsset: true, HasSimulationModel: true},
			},
			wantMode:     ModeHybrid,
			wantComplete: true,
			wantMissing:  nil,
		},
		{
			name: "driver only",
			spec: &DeviceSpec{
				ID:    "acme/widget",
				Flags: Flags{HasHardwareDriver: true},
			},
			wantMode:     ModeHardwareOnly,
			wantComplete: false,
			wantMissing:  []string{FlagDigitalAsset, FlagSimulationModel},
		},
		{
			name:         "specification only",
			spec:         &DeviceSpec{ID: "acme/paper"},
			wantMode:     ModeSpecificationOnly,
			wantComplete: false,
			wantMissing:  []string{FlagHardwareDriver, FlagDigitalAsset, FlagSimulationModel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Recommend(tt.spec)
			if rec.Mode != tt.wantMode {
				t.Errorf("Mode = %q, want %q", rec.Mode, tt.wantMode)
			}
			if rec.IsComplete != tt.wantComplete {
				t.Errorf("IsComplete = %v, want %v", rec.IsComplete, tt.wantComplete)
			}
			if !reflect.DeepEqual(rec.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", rec.Missing, tt.wantMissing)
			}
		})
	}
}

func TestRecommendExtendedCapabilitiesIgnored(t *testing.T) {
	s := &DeviceSpec{
		ID: "acme/widget",
		ExtendedCapabilities: map[string]bool{
			"has_ros_driver": true,
		},
	}
	if got := Recommend(s).Mode; got != ModeSpecificationOnly {
		t.Errorf("extended capabilities leaked into classification: got %q", got)
	}
}

func TestValidDeploymentMode(t *testing.T) {
	for _, mode := range AllDeploymentModes() {
		if !ValidDeploymentMode(mode) {
			t.Errorf("ValidDeploymentMode(%q) = false", mode)
		}
	}
	if ValidDeploymentMode("simulation") {
		t.Error("ValidDeploymentMode accepted a non-terminal mode")
	}
}
