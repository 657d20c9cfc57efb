package spec

import (
	"errors"
	"sync"
	"testing"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"dji/tello", false},
		{"boston-dynamics/spot", false},
		{"generic/ip-camera", false},
		{"custom/so_101", false},
		{"a1/b2", false},
		{"", true},
		{"tello", true},
		{"dji/", true},
		{"/tello", true},
		{"dji/tello/v2", true},
		{"DJI/Tello", true},
		{"dji /tello", true},
		{"-dji/tello", true},
		{"dji-/tello", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.wantErr && !errors.Is(err, ErrInvalidIdentifier) {
				t.Errorf("ValidateID(%q) = %v, want ErrInvalidIdentifier", tt.id, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateID(%q) = %v, want nil", tt.id, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    *DeviceSpec
		wantErr error
	}{
		{
			name: "valid",
			spec: &DeviceSpec{ID: "dji/tello", Name: "DJI Tello", Category: "drone"},
		},
		{
			name:    "bad id",
			spec:    &DeviceSpec{ID: "tello", Name: "DJI Tello", Category: "drone"},
			wantErr: ErrInvalidIdentifier,
		},
		{
			name:    "no name",
			spec:    &DeviceSpec{ID: "dji/tello", Category: "drone"},
			wantErr: ErrInvalidSpec,
		},
		{
			name:    "no category",
			spec:    &DeviceSpec{ID: "dji/tello", Name: "DJI Tello"},
			wantErr: ErrInvalidSpec,
		},
		{
			name:    "nil",
			spec:    nil,
			wantErr: ErrInvalidSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.spec)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSplitID(t *testing.T) {
	ns, name := SplitID("dji/tello")
	if ns != "dji" || name != "tello" {
		t.Errorf("SplitID = (%q, %q), want (dji, tello)", ns, name)
	}

	ns, name = SplitID("tello")
	if ns != "" || name != "tello" {
		t.Errorf("SplitID = (%q, %q), want (\"\", tello)", ns, name)
	}
}

func TestHumanizeID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"unknown/x", "Unknown X"},
		{"dji/tello", "Dji Tello"},
		{"boston-dynamics/spot", "Boston Dynamics Spot"},
		{"generic/ip-camera", "Generic Ip Camera"},
		{"custom/so_101", "Custom So 101"},
	}

	for _, tt := range tests {
		if got := HumanizeID(tt.id); got != tt.want {
			t.Errorf("HumanizeID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestHumanizeIDConcurrent(t *testing.T) {
	ids := []string{
		"unknown/x",
		"dji/tello",
		"boston-dynamics/spot",
		"generic/ip-camera",
		"custom/so_101",
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for _, id := range ids {
					if got := HumanizeID(id); got == "" {
						t.Errorf("HumanizeID(%q) returned empty string", id)
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"acme/drone-x1", "drone"},
		{"acme/tello-clone", "drone"},
		{"acme/ipcam-2000", "ip_camera"},
		{"acme/webcam", "camera"},
		{"acme/lidar-unit", "sensor"},
		{"acme/grip-arm", "robotic_arm"},
		{"acme/warehouse-rover", "ground_robot"},
		{"acme/thing", ""},
	}

	for _, tt := range tests {
		if got := InferCategory(tt.id); got != tt.want {
			t.Errorf("InferCategory(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestGenericIDForCategory(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"drone", "generic/drone"},
		{"ip_camera", "generic/ip-camera"},
		{"ground_robot", "generic/ground-robot"},
	}

	for _, tt := range tests {
		if got := GenericIDForCategory(tt.category); got != tt.want {
			t.Errorf("GenericIDForCategory(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}
