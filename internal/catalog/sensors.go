package catalog

import "github.com/specwave/spec-core/internal/spec"

// Sensors returns the built-in perception sensor specifications. These are
// specification-only profiles: they document the hardware but no driver or
// asset implementation ships with the registry.
func Sensors() spec.Contributor {
	return spec.ContributorFunc{
		ContributorName: "builtin/sensors",
		Produce: func() ([]*spec.DeviceSpec, error) {
			return []*spec.DeviceSpec{
				intelRealSenseD435(),
				velodynePuck(),
				stereolabsZED2(),
			}, nil
		},
	}
}

func intelRealSenseD435() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "intel/realsense-d435",
		Name:         "Intel RealSense D435",
		Category:     "depth_camera",
		Manufacturer: "Intel",
		Model:        "D435",
		Description:  "RGB-D camera with stereo depth sensing",
		Capabilities: []spec.Capability{
			{
				Name:        "rgb_imaging",
				Commands:    []string{"capture_rgb", "start_rgb_stream", "stop_rgb_stream"},
				Description: "RGB color imaging",
			},
			{
				Name:        "depth_sensing",
				Commands:    []string{"capture_depth", "start_depth_stream", "stop_depth_stream"},
				Description: "Stereo depth sensing",
			},
			{
				Name:        "pointcloud",
				Commands:    []string{"generate_pointcloud", "stream_pointcloud"},
				Description: "3D point cloud generation",
			},
		},
		Protocols: []spec.Protocol{
			{Type: "usb", Commands: []string{"capture_rgb", "capture_depth"}, Parameters: map[string]any{"usb_version": "3.0"}},
		},
		Connection: &spec.ConnectionInfo{Type: "usb"},
		SetupFields: []spec.SetupField{
			{Name: "name", Type: spec.FieldString, Label: "Device Name", Default: "My RealSense", Required: true},
			{Name: "rgb_resolution", Type: spec.FieldSelect, Label: "RGB Resolution", Default: "1280x720", Options: []string{"1920x1080", "1280x720", "640x480"}},
			{Name: "depth_resolution", Type: spec.FieldSelect, Label: "Depth Resolution", Default: "848x480", Options: []string{"1280x720", "848x480", "640x480"}},
			{Name: "framerate", Type: spec.FieldSelect, Label: "Framerate", Default: "30", Options: []string{"15", "30", "60", "90"}},
		},
	}
}

func velodynePuck() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "velodyne/puck",
		Name:         "Velodyne Puck (VLP-16)",
		Category:     "lidar",
		Manufacturer: "Velodyne",
		Model:        "VLP-16",
		Description:  "16-channel LIDAR for 3D sensing and mapping",
		Capabilities: []spec.Capability{
			{
				Name:        "lidar_sensing",
				Commands:    []string{"start_scan", "stop_scan", "get_pointcloud"},
				Description: "3D LIDAR scanning",
			},
			{
				Name:        "mapping",
				Commands:    []string{"generate_map", "localize", "detect_obstacles"},
				Description: "SLAM and navigation",
			},
		},
		Protocols: []spec.Protocol{
			{Type: "ethernet", Port: 2368, Commands: []string{"start_scan", "get_pointcloud"}},
		},
		Connection: &spec.ConnectionInfo{Type: "ethernet", DefaultIP: "192.168.1.201"},
		SetupFields: []spec.SetupField{
			{Name: "name", Type: spec.FieldString, Label: "Device Name", Default: "My Puck", Required: true},
			{Name: "ip_address", Type: spec.FieldIPv4, Label: "Sensor IP Address", Default: "192.168.1.201", Required: true},
			{Name: "rotation_rate", Type: spec.FieldSelect, Label: "Rotation Rate (Hz)", Default: "10", Options: []string{"5", "10", "20"}},
		},
	}
}

func stereolabsZED2() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "stereolabs/zed2",
		Name:         "Stereolabs ZED 2",
		Category:     "stereo_camera",
		Manufacturer: "Stereolabs",
		Model:        "ZED 2",
		Description:  "AI-powered stereo camera with depth sensing and object detection",
		Capabilities: []spec.Capability{
			{
				Name:        "stereo_vision",
				Commands:    []string{"capture_stereo", "start_stereo_stream", "stop_stereo_stream"},
				Description: "Stereo imaging and depth estimation",
			},
			{
				Name:        "object_detection",
				Commands:    []string{"detect_objects", "track_objects", "detect_humans"},
				Description: "AI-powered object detection and tracking",
			},
			{
				Name:        "spatial_mapping",
				Commands:    []string{"start_mapping", "stop_mapping", "get_mesh"},
				Description: "Real-time 3D mapping",
			},
		},
		Protocols: []spec.Protocol{
			{Type: "usb", Commands: []string{"capture_stereo", "detect_objects"}, Parameters: map[string]any{"usb_version": "3.0"}},
		},
		Connection: &spec.ConnectionInfo{Type: "usb"},
		SetupFields: []spec.SetupField{
			{Name: "name", Type: spec.FieldString, Label: "Device Name", Default: "My ZED 2", Required: true},
			{Name: "resolution", Type: spec.FieldSelect, Label: "Resolution", Default: "HD720", Options: []string{"HD2K", "HD1080", "HD720", "VGA"}},
			{Name: "enable_object_detection", Type: spec.FieldBoolean, Label: "Enable Object Detection", Default: true},
			{Name: "enable_spatial_mapping", Type: spec.FieldBoolean, Label: "Enable Spatial Mapping", Default: false},
		},
	}
}
