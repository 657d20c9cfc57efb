package catalog

import "github.com/specwave/spec-core/internal/spec"

// Robots returns the built-in robot specifications: drones, arms and
// quadrupeds with varying levels of implementation coverage.
func Robots() spec.Contributor {
	return spec.ContributorFunc{
		ContributorName: "builtin/robots",
		Produce: func() ([]*spec.DeviceSpec, error) {
			return []*spec.DeviceSpec{
				djiTello(),
				bostonDynamicsSpot(),
				kukaKR3(),
				universalRobotsUR5e(),
				unitreeGo1(),
				so101(),
			}, nil
		},
	}
}

func djiTello() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "dji/tello",
		Name:         "DJI Tello",
		Category:     "drone",
		Manufacturer: "DJI",
		Model:        "Tello",
		Description:  "Educational drone with WiFi control and HD camera",
		Flags: spec.Flags{
			HasHardwareDriver:  true,
			HasDigitalAsset:    true,
			HasSimulationModel: true,
		},
		DriverClass:        "drivers.TelloDriver",
		AssetClass:         "assets.DjiTello",
		FallbackAssetClass: "assets.GenericDrone",
		SimulationModels:   []string{"gazebo", "airsim"},
		ExtendedCapabilities: map[string]bool{
			"has_ros_driver":  false,
			"has_unity_model": false,
			"has_mobile_app":  true,
		},
		Capabilities: []spec.Capability{
			{
				Name: "flight",
				Commands: []string{
					"takeoff", "land", "emergency", "up", "down",
					"left", "right", "forward", "back", "cw", "ccw",
					"flip", "go", "curve", "speed",
				},
				Description: "Flight control and movement commands",
			},
			{
				Name:        "video_streaming",
				Commands:    []string{"streamon", "streamoff"},
				Description: "Real-time video streaming from drone camera",
			},
			{
				Name:        "camera",
				Commands:    []string{"photo", "video_start", "video_stop"},
				Description: "Camera capture and recording",
			},
			{
				Name: "telemetry",
				Commands: []string{
					"battery?", "speed?", "time?", "height?", "temp?",
					"attitude?", "baro?", "acceleration?", "tof?", "wifi?",
				},
				Description: "Real-time status and sensor readings",
			},
		},
		Protocols: []spec.Protocol{
			{
				Type:       "udp",
				Port:       8889,
				Commands:   []string{"takeoff", "land", "emergency", "up", "down", "left", "right", "forward", "back"},
				Parameters: map[string]any{"timeout": 5.0, "retry_count": 3},
			},
			{
				Type:       "udp",
				Port:       8890,
				Commands:   []string{"streamon", "streamoff"},
				Parameters: map[string]any{"video_stream": true},
			},
			{
				Type:       "udp",
				Port:       11111,
				Commands:   []string{"video_data"},
				Parameters: map[string]any{"stream_type": "h264", "buffer_size": 65536},
			},
		},
		Connection: &spec.ConnectionInfo{
			Type:      "wifi",
			DefaultIP: "192.168.10.1",
			SetupInstructions: []string{
				"Power on the Tello drone",
				"Connect to Tello WiFi network (TELLO-XXXXXX)",
				"Wait for connection to establish",
				"Test connection with 'command' message",
			},
		},
		SetupFields: []spec.SetupField{
			{Name: "name", Type: spec.FieldString, Label: "Device Name", Default: "My Tello", Required: true, Help: "Friendly name for this Tello drone"},
			{Name: "ip_address", Type: spec.FieldIPv4, Label: "IP Address", Default: "192.168.10.1", Required: true, Help: "IP address of the Tello drone (usually 192.168.10.1)"},
			{Name: "enable_video", Type: spec.FieldBoolean, Label: "Enable Video Stream", Default: true, Help: "Enable video streaming from drone camera"},
			{Name: "max_height", Type: spec.FieldInt, Label: "Maximum Flight Height (m)", Default: 10, Help: "Maximum allowed flight height in meters"},
		},
		Specs: map[string]any{
			"weight_g":            80,
			"max_flight_time_min": 13,
			"max_speed_ms":        8,
			"max_altitude_m":      10,
			"camera": map[string]any{
				"resolution": "720p",
				"fov_deg":    82.6,
			},
			"battery": map[string]any{
				"capacity_mah": 1100,
				"type":         "LiPo",
			},
		},
		DocumentationURL: "https://dl-cdn.ryzerobotics.com/downloads/Tello/Tello%20SDK%202.0%20User%20Guide.pdf",
	}
}

func bostonDynamicsSpot() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "boston-dynamics/spot",
		Name:         "Boston Dynamics Spot",
		Category:     "quadruped",
		Manufacturer: "Boston Dynamics",
		Model:        "Spot",
		Description:  "Advanced quadruped robot with autonomous navigation",
		Capabilities: []spec.Capability{
			{
				Name:        "mobility",
				Commands:    []string{"walk", "turn", "sit", "stand", "dance", "navigate_to"},
				Description: "Locomotion and movement",
			},
			{
				Name:        "perception",
				Commands:    []string{"get_camera_feed", "detect_objects", "map_environment"},
				Description: "Vision and sensing",
			},
		},
		Protocols: []spec.Protocol{
			{Type: "grpc", Port: 443, Commands: []string{"walk", "turn", "sit", "stand"}},
		},
		Connection: &spec.ConnectionInfo{Type: "ethernet", DefaultIP: "192.168.80.3"},
		SetupFields: []spec.SetupField{
			{Name: "name", Type: spec.FieldString, Label: "Device Name", Default: "My Spot", Required: true},
			{Name: "ip_address", Type: spec.FieldIPv4, Label: "Robot IP Address", Default: "192.168.80.3", Required: true},
		},
	}
}

func kukaKR3() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "kuka/kr3",
		Name:         "KUKA KR3",
		Category:     "industrial_arm",
		Manufacturer: "KUKA",
		Model:        "KR3",
		Description:  "Precision industrial robotic arm for manufacturing",
		Capabilities: []spec.Capability{
			{
				Name:        "manipulation",
				Commands:    []string{"move_joints", "move_linear", "move_ptp", "home"},
				Description: "Precision movement and positioning",
			},
			{
				Name:        "io",
				Commands:    []string{"set_digital_out", "get_digital_in", "set_analog_out"},
				Description: "Industrial I/O control",
			},
		},
		Protocols: []spec.Protocol{
			{Type: "ethernet_ip", Port: 44818, Commands: []string{"move_joints", "move_linear"}},
		},
		Connection: &spec.ConnectionInfo{Type: "ethernet", DefaultIP: "192.168.1.100"},
		SetupFields: []spec.SetupField{
			{Name: "name", Type: spec.FieldString, Label: "Device Name", Default: "My KR3", Required: true},
			{Name: "ip_address", Type: spec.FieldIPv4, Label: "Controller IP", Default: "192.168.1.100", Required: true},
		},
	}
}

func universalRobotsUR5e() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "universal-robots/ur5e",
		Name:         "Universal Robots UR5e",
		Category:     "robot_arm",
		Manufacturer: "Universal Robots",
		Model:        "UR5e",
		Description:  "Six-degree-of-freedom collaborative robot arm with standard gripper tooling",
		Flags: spec.Flags{
			HasDigitalAsset:    true,
			HasSimulationModel: true,
		},
		AssetClass:         "assets.UR5eArm",
		FallbackAssetClass: "assets.GenericRoboticArm",
		SimulationModels:   []string{"mujoco", "gazebo"},
		Capabilities: []spec.Capability{
			{
				Name: "manipulation",
				Commands: []string{
					"arm.move_joints", "arm.move_pose", "arm.stop",
					"gripper.open", "gripper.close",
				},
				Description: "Core manipulation commands for pick and place workflows",
			},
			{
				Name:        "telemetry",
				Commands:    []string{"robot_status", "joint_state", "effort"},
				Description: "Robot status introspection",
			},
		},
		Protocols: []spec.Protocol{
			{Type: "ethernet", Port: 29999, Commands: []string{"arm.move_joints", "arm.move_pose"}},
		},
		Connection: &spec.ConnectionInfo{Type: "ethernet", DefaultIP: "192.168.0.10"},
		SetupFields: []spec.SetupField{
			{Name: "name", Type: spec.FieldString, Label: "Device Name", Default: "My UR5e", Required: true},
			{Name: "controller_ip", Type: spec.FieldIPv4, Label: "Controller IP", Default: "192.168.0.10", Required: true},
		},
	}
}

func unitreeGo1() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "unitree/go1",
		Name:         "Unitree Go1 Quadruped",
		Category:     "quadruped_robot",
		Manufacturer: "Unitree",
		Model:        "Go1",
		Description:  "Advanced quadruped robot with autonomous navigation",
		Flags: spec.Flags{
			HasHardwareDriver:  true,
			HasDigitalAsset:    true,
			HasSimulationModel: true,
		},
		DriverClass:        "drivers.Go1Driver",
		AssetClass:         "assets.UnitreeGo1",
		FallbackAssetClass: "assets.GenericQuadruped",
		SimulationModels:   []string{"gazebo"},
		Capabilities: []spec.Capability{
			{Name: "walking", Commands: []string{"walk_forward", "walk_backward"}, Description: "Locomotion"},
			{Name: "navigation", Commands: []string{"navigate_to"}, Description: "Autonomous navigation"},
			{Name: "sensors", Commands: []string{"get_status"}, Description: "Sensor telemetry"},
		},
		Protocols: []spec.Protocol{
			{Type: "ethernet", Port: 8080, Commands: []string{"control"}, Parameters: map[string]any{"api": "control"}},
			{Type: "udp", Port: 8082, Commands: []string{"high_level"}, Parameters: map[string]any{"rate_hz": 50}},
		},
		Connection: &spec.ConnectionInfo{Type: "ethernet", DefaultIP: "192.168.123.161"},
		SetupFields: []spec.SetupField{
			{Name: "ip_address", Type: spec.FieldIPv4, Label: "Robot IP Address", Default: "192.168.123.161", Required: true},
			{Name: "control_mode", Type: spec.FieldString, Label: "Control Mode", Default: "high_level"},
		},
	}
}

func so101() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "custom/so101",
		Name:         "SO-101 Robotic Arm",
		Category:     "robotic_arm",
		Manufacturer: "Standard Robots",
		Model:        "SO-101",
		Description:  "Leader-follower teleoperation robotic arm with 6 DOF and gripper",
		Flags: spec.Flags{
			HasHardwareDriver:  true,
			HasDigitalAsset:    true,
			HasSimulationModel: true,
		},
		DriverClass:        "drivers.SO101Driver",
		AssetClass:         "assets.SO101Robot",
		FallbackAssetClass: "assets.GenericRoboticArm",
		SimulationModels:   []string{"gazebo", "mujoco"},
		Capabilities: []spec.Capability{
			{
				Name:        "manipulation",
				Commands:    []string{"move_joints", "get_position", "calibrate"},
				Description: "Arm movement and positioning",
			},
			{
				Name:        "gripper",
				Commands:    []string{"open_gripper", "close_gripper", "set_gripper", "get_gripper_state"},
				Description: "Gripper control",
			},
			{
				Name:        "teleoperation",
				Commands:    []string{"start_teleoperation", "stop_teleoperation"},
				Description: "Leader-follower teleoperation",
			},
			{
				Name:        "safety",
				Commands:    []string{"emergency_stop", "enable_torque", "disable_torque", "get_safety_status"},
				Description: "Safety and emergency controls",
			},
			{
				Name:        "telemetry",
				Commands:    []string{"get_joint_states", "get_pose", "get_forces"},
				Description: "Real-time telemetry and status",
			},
		},
		Protocols: []spec.Protocol{
			{Type: "serial", Baudrate: 1000000, Commands: []string{"move_joints", "get_position", "calibrate"}},
		},
		Connection: &spec.ConnectionInfo{
			Type: "serial",
			SetupInstructions: []string{
				"Connect the follower arm via USB",
				"Optionally connect the leader arm for teleoperation",
				"Identify the serial ports (usually /dev/ttyACM0 and /dev/ttyACM1)",
			},
		},
		SetupFields: []spec.SetupField{
			{Name: "name", Type: spec.FieldString, Label: "Device Name", Default: "My SO-101", Required: true},
			{Name: "leader_port", Type: spec.FieldString, Label: "Leader Serial Port", Default: "/dev/ttyACM0", Required: true},
			{Name: "follower_port", Type: spec.FieldString, Label: "Follower Serial Port", Default: "/dev/ttyACM1", Required: true},
			{Name: "enable_teleoperation", Type: spec.FieldBoolean, Label: "Enable Teleoperation", Default: true},
			{Name: "safety_limits", Type: spec.FieldBoolean, Label: "Enforce Safety Limits", Default: true},
			{Name: "calibration_mode", Type: spec.FieldSelect, Label: "Calibration Mode", Default: "auto", Options: []string{"auto", "manual", "skip"}},
		},
	}
}
