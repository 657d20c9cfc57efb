package catalog

import "github.com/specwave/spec-core/internal/spec"

// Cameras returns the built-in camera and recorder specifications. The
// generic entries are deliberately complete enough to act as category
// fallback targets.
func Cameras() spec.Contributor {
	return spec.ContributorFunc{
		ContributorName: "builtin/cameras",
		Produce: func() ([]*spec.DeviceSpec, error) {
			return []*spec.DeviceSpec{
				genericCamera(),
				genericIPCamera(),
				genericNVR(),
				genericWebcam(),
				rtspCamera(),
				univiewNVR(),
			}, nil
		},
	}
}

func genericCamera() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:                 "generic/camera",
		Name:               "Generic Camera",
		Category:           "camera",
		Manufacturer:       "Generic",
		Description:        "Minimal camera profile used when no vendor spec exists",
		FallbackAssetClass: "assets.GenericCamera",
		Capabilities: []spec.Capability{
			{Name: "video", Commands: []string{"start_stream", "stop_stream"}, Description: "Video streaming"},
			{Name: "snapshot", Commands: []string{"capture_snapshot"}, Description: "Still image capture"},
		},
		Connection: &spec.ConnectionInfo{Type: "network"},
	}
}

func genericIPCamera() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "generic/ip-camera",
		Name:         "Generic IP Camera",
		Category:     "ip_camera",
		Manufacturer: "Generic",
		Description:  "Standard IP camera with RTSP/HTTP streaming",
		Flags: spec.Flags{
			HasHardwareDriver: true,
			HasDigitalAsset:   true,
		},
		DriverClass:        "drivers.IPCameraDriver",
		AssetClass:         "assets.GenericIPCamera",
		FallbackAssetClass: "assets.GenericCamera",
		Capabilities: []spec.Capability{
			{
				Name:        "video_streaming",
				Commands:    []string{"start_stream", "stop_stream", "get_stream_url"},
				Description: "Video streaming via RTSP/HTTP",
			},
			{
				Name:        "ptz_control",
				Commands:    []string{"pan", "tilt", "zoom", "preset_goto", "preset_set"},
				Description: "Pan-Tilt-Zoom control (if supported)",
			},
			{
				Name:        "image_capture",
				Commands:    []string{"capture_image", "get_snapshot"},
				Description: "Still image capture",
			},
		},
		Protocols: []spec.Protocol{
			{Type: "rtsp", Port: 554, Commands: []string{"start_stream", "get_stream_url"}},
			{Type: "http", Port: 80, Commands: []string{"capture_image", "get_snapshot"}},
		},
		Connection: &spec.ConnectionInfo{Type: "ethernet", DefaultIP: "192.168.1.100"},
		SetupFields: []spec.SetupField{
			{Name: "name", Type: spec.FieldString, Label: "Camera Name", Default: "My IP Camera", Required: true},
			{Name: "ip_address", Type: spec.FieldIPv4, Label: "Camera IP Address", Default: "192.168.1.100", Required: true},
			{Name: "username", Type: spec.FieldString, Label: "Username", Default: "admin"},
			{Name: "password", Type: spec.FieldString, Label: "Password", Default: ""},
			{Name: "rtsp_port", Type: spec.FieldInt, Label: "RTSP Port", Default: 554},
		},
	}
}

func genericNVR() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "generic/nvr",
		Name:         "Generic NVR (Multi-Stream)",
		Category:     "nvr",
		Manufacturer: "Generic",
		Model:        "NVR",
		Description:  "Network Video Recorder supporting multiple camera streams",
		Flags:        spec.Flags{HasHardwareDriver: true},
		DriverClass:  "drivers.NVRDriver",
		Capabilities: []spec.Capability{
			{Name: "video_multistream", Commands: []string{"refresh_streams"}, Description: "Multiple channels"},
			{Name: "video", Commands: []string{"start_stream", "stop_stream"}, Description: "Video streaming"},
			{Name: "snapshot", Commands: []string{"capture_snapshot"}, Description: "Still image capture"},
		},
		Protocols: []spec.Protocol{
			{Type: "http", Port: 80, Commands: []string{"list_channels"}, Parameters: map[string]any{"api": "nvr"}},
			{Type: "rtsp", Port: 554, Commands: []string{"get_stream"}, Parameters: map[string]any{"per_channel": true}},
		},
		Connection: &spec.ConnectionInfo{Type: "network", DefaultIP: "192.168.1.20"},
		SetupFields: []spec.SetupField{
			{Name: "host", Type: spec.FieldString, Label: "NVR Host/IP", Default: "192.168.1.20", Required: true},
			{Name: "username", Type: spec.FieldString, Label: "Username", Default: "admin", Required: true},
			{Name: "password", Type: spec.FieldString, Label: "Password", Default: "", Required: true},
			{Name: "channels", Type: spec.FieldInt, Label: "Channel Count", Default: 8},
		},
	}
}

func genericWebcam() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "generic/webcam",
		Name:         "Laptop / USB Webcam",
		Category:     "camera",
		Manufacturer: "Generic",
		Model:        "Webcam",
		Description:  "Webcam that connects via browser or via a node on the same machine",
		Flags:        spec.Flags{HasHardwareDriver: true},
		DriverClass:  "drivers.WebcamDriver",
		Capabilities: []spec.Capability{
			{Name: "video", Commands: []string{"start_stream", "stop_stream"}, Description: "Video streaming"},
			{Name: "snapshot", Commands: []string{"capture_snapshot"}, Description: "Capture still image"},
		},
		Protocols: []spec.Protocol{
			{Type: "webrtc"},
			{Type: "mjpeg"},
		},
		Connection: &spec.ConnectionInfo{Type: "network"},
		SetupFields: []spec.SetupField{
			{Name: "connectivity_mode", Type: spec.FieldSelect, Label: "Connectivity Mode", Default: "web", Options: []string{"web", "node"}},
		},
	}
}

func rtspCamera() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "generic/rtsp-camera",
		Name:         "RTSP IP Camera",
		Category:     "ip_camera",
		Manufacturer: "Generic",
		Description:  "IP camera reachable through a raw RTSP URL",
		Capabilities: []spec.Capability{
			{Name: "video_streaming", Commands: []string{"start_stream", "stop_stream", "get_stream_url"}, Description: "RTSP video streaming"},
		},
		Protocols: []spec.Protocol{
			{Type: "rtsp", Port: 554, Commands: []string{"start_stream", "get_stream_url"}},
		},
		Connection: &spec.ConnectionInfo{Type: "ethernet"},
		SetupFields: []spec.SetupField{
			{Name: "stream_url", Type: spec.FieldString, Label: "RTSP Stream URL", Required: true, Help: "Full RTSP URL including credentials if required"},
		},
	}
}

func univiewNVR() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "uniview/nvr",
		Name:         "Uniview NVR",
		Category:     "nvr_system",
		Manufacturer: "Uniview",
		Model:        "NVR Series",
		Description:  "Network Video Recorder with multi-channel camera support",
		Capabilities: []spec.Capability{
			{
				Name:        "video_streaming",
				Commands:    []string{"get_camera_stream", "list_cameras", "switch_camera"},
				Description: "Multi-channel video streaming",
			},
			{
				Name:        "video_recording",
				Commands:    []string{"start_recording", "stop_recording", "get_recording_status"},
				Description: "Recording management",
			},
			{
				Name:        "motion_detection",
				Commands:    []string{"enable_motion_detection", "disable_motion_detection", "get_motion_events"},
				Description: "Motion event handling",
			},
		},
		Protocols: []spec.Protocol{
			{Type: "http", Port: 80, Commands: []string{"list_cameras", "get_camera_stream"}},
			{Type: "rtsp", Port: 554, Commands: []string{"get_camera_stream"}},
		},
		Connection: &spec.ConnectionInfo{Type: "ethernet", DefaultIP: "192.168.1.108"},
		SetupFields: []spec.SetupField{
			{Name: "name", Type: spec.FieldString, Label: "Device Name", Default: "My NVR", Required: true},
			{Name: "ip_address", Type: spec.FieldIPv4, Label: "NVR IP Address", Default: "192.168.1.108", Required: true},
			{Name: "username", Type: spec.FieldString, Label: "Username", Default: "admin", Required: true},
			{Name: "password", Type: spec.FieldString, Label: "Password", Default: "", Required: true},
			{Name: "channel_count", Type: spec.FieldInt, Label: "Channel Count", Default: 4},
		},
	}
}
