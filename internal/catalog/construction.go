package catalog

import "github.com/specwave/spec-core/internal/spec"

// Construction returns the built-in construction-site specifications:
// heavy equipment, site security devices, and facility twins.
func Construction() spec.Contributor {
	return spec.ContributorFunc{
		ContributorName: "builtin/construction",
		Produce: func() ([]*spec.DeviceSpec, error) {
			return []*spec.DeviceSpec{
				genericExcavator(),
				caterpillar320(),
				securityCamera(),
				securityDrone(),
				perimeterGuardAI(),
				companyHeadquarters(),
			}, nil
		},
	}
}

func genericExcavator() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "generic/excavator",
		Name:         "Generic Excavator",
		Category:     "construction_equipment",
		Manufacturer: "Generic",
		Model:        "Excavator",
		Description:  "Heavy construction excavator for digging, demolition, and material handling",
		Flags: spec.Flags{
			HasDigitalAsset:    true,
			HasSimulationModel: true,
		},
		AssetClass:         "assets.GenericExcavator",
		FallbackAssetClass: "assets.GenericHeavyMachinery",
		SimulationModels:   []string{"mujoco", "gazebo"},
		ExtendedCapabilities: map[string]bool{
			"has_telemetry_monitoring": true,
			"has_safety_systems":       true,
			"has_remote_monitoring":    true,
			"has_work_zone_detection":  true,
		},
		Capabilities: []spec.Capability{
			{
				Name: "excavation",
				Commands: []string{
					"arm_extend", "arm_retract", "bucket_dig", "bucket_dump",
					"boom_raise", "boom_lower", "swing_left", "swing_right",
					"track_forward", "track_reverse", "emergency_stop",
				},
				Description: "Excavation and material handling operations",
			},
			{
				Name:        "safety_monitoring",
				Commands:    []string{"proximity_scan", "work_zone_check", "operator_status"},
				Description: "Safety systems and work zone monitoring",
			},
			{
				Name: "telemetry",
				Commands: []string{
					"engine_status", "hydraulic_pressure", "fuel_level",
					"operating_hours", "location", "load_weight",
				},
				Description: "Real-time equipment telemetry and status",
			},
		},
		Protocols: []spec.Protocol{
			{
				Type:       "can_bus",
				Commands:   []string{"arm_extend", "arm_retract", "bucket_dig", "bucket_dump"},
				Parameters: map[string]any{"baud_rate": 250000, "timeout": 1.0},
			},
			{
				Type:       "ethernet",
				Port:       502,
				Commands:   []string{"telemetry", "status_update"},
				Parameters: map[string]any{"protocol": "modbus_tcp", "unit_id": 1},
			},
		},
		Connection: &spec.ConnectionInfo{
			Type:      "ethernet",
			DefaultIP: "192.168.1.100",
			SetupInstructions: []string{
				"Connect to the excavator's onboard computer via Ethernet",
				"Configure network settings (static IP recommended)",
				"Verify the CAN bus interface is operational",
				"Test communication with the control system",
			},
		},
		SetupFields: []spec.SetupField{
			{Name: "name", Type: spec.FieldString, Label: "Equipment Name", Default: "Excavator-01", Help: "Unique identifier for this excavator"},
			{Name: "ip_address", Type: spec.FieldIPv4, Label: "IP Address", Default: "192.168.1.100", Help: "IP address of the excavator's control system"},
			{Name: "work_zone_id", Type: spec.FieldString, Label: "Work Zone ID", Default: "ZONE-A", Help: "Designated work zone for this equipment"},
			{Name: "operator_id", Type: spec.FieldString, Label: "Operator ID", Required: true, Help: "ID of the certified operator"},
		},
		Specs: map[string]any{
			"weight_kg": 20000,
			"engine": map[string]any{
				"power_kw":       150,
				"type":           "diesel",
				"displacement_l": 6.7,
			},
			"hydraulics": map[string]any{
				"max_pressure_bar": 350,
				"flow_rate_lpm":    280,
			},
			"bucket": map[string]any{
				"capacity_m3":           1.2,
				"max_breakout_force_kn": 130,
			},
			"operating_range": map[string]any{
				"max_dig_depth_m":   6.5,
				"max_reach_m":       9.8,
				"max_dump_height_m": 6.7,
			},
		},
	}
}

func caterpillar320() *spec.DeviceSpec {
	s := genericExcavator()
	s.ID = "caterpillar/320"
	s.Name = "Caterpillar 320"
	s.Manufacturer = "Caterpillar"
	s.Model = "320"
	s.Description = "Mid-size hydraulic excavator for general construction and excavation"
	s.ExtendedCapabilities["has_cat_connect"] = true
	s.ExtendedCapabilities["has_grade_control"] = true
	s.ExtendedCapabilities["has_payload_weighing"] = true
	s.Specs["fuel_capacity_l"] = 400
	s.Specs["swing_speed_rpm"] = 11.2
	s.Specs["certifications"] = []string{"CE", "EPA Tier 4", "ISO 9001"}
	return s
}

func securityCamera() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "generic/security_camera",
		Name:         "Security Camera",
		Category:     "security_camera",
		Manufacturer: "Generic",
		Model:        "SecurityCam",
		Description:  "High-resolution security camera with AI-powered analytics for site monitoring",
		Flags: spec.Flags{
			HasHardwareDriver:  true,
			HasDigitalAsset:    true,
			HasSimulationModel: true,
		},
		DriverClass:        "drivers.SecurityCameraDriver",
		AssetClass:         "assets.SecurityCamera",
		FallbackAssetClass: "assets.GenericCamera",
		SimulationModels:   []string{"unity", "unreal"},
		ExtendedCapabilities: map[string]bool{
			"has_ai_analytics":        true,
			"has_motion_detection":    true,
			"has_facial_recognition":  true,
			"has_object_detection":    true,
			"has_intrusion_detection": true,
			"has_night_vision":        true,
		},
		Capabilities: []spec.Capability{
			{
				Name: "video_surveillance",
				Commands: []string{
					"start_recording", "stop_recording", "take_snapshot",
					"zoom_in", "zoom_out", "focus_auto", "focus_manual",
				},
				Description: "Video surveillance and recording capabilities",
			},
			{
				Name: "ai_analytics",
				Commands: []string{
					"detect_people", "detect_vehicles", "detect_equipment",
					"analyze_safety_compliance", "count_personnel", "detect_ppe",
				},
				Description: "AI-powered video analytics for safety and security",
			},
			{
				Name:        "motion_detection",
				Commands:    []string{"enable_motion_detection", "disable_motion_detection", "set_sensitivity"},
				Description: "Motion-triggered alerting",
			},
			{
				Name:        "ptz_control",
				Commands:    []string{"pan_left", "pan_right", "tilt_up", "tilt_down", "preset_goto"},
				Description: "Pan, tilt and zoom control",
			},
		},
		Protocols: []spec.Protocol{
			{Type: "rtsp", Port: 554, Commands: []string{"start_recording", "stop_recording"}, Parameters: map[string]any{"stream_path": "/live/main", "codec": "h264"}},
			{Type: "http", Port: 80, Commands: []string{"take_snapshot", "zoom_in", "zoom_out"}, Parameters: map[string]any{"api_version": "v1", "auth": "basic"}},
			{Type: "onvif", Port: 8080, Commands: []string{"pan_left", "pan_right", "preset_goto"}, Parameters: map[string]any{"profile": "S", "version": "2.6"}},
		},
		Connection: &spec.ConnectionInfo{Type: "ethernet", DefaultIP: "192.168.1.64"},
		SetupFields: []spec.SetupField{
			{Name: "name", Type: spec.FieldString, Label: "Camera Name", Default: "Site Camera", Required: true},
			{Name: "ip_address", Type: spec.FieldIPv4, Label: "IP Address", Default: "192.168.1.64", Required: true},
			{Name: "location", Type: spec.FieldString, Label: "Camera Location", Help: "Physical mounting location on site"},
			{Name: "resolution", Type: spec.FieldSelect, Label: "Video Resolution", Default: "1080p", Options: []string{"720p", "1080p", "4k"}},
			{Name: "enable_ai_analytics", Type: spec.FieldBoolean, Label: "Enable AI Analytics", Default: true},
		},
	}
}

func securityDrone() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "generic/security_drone",
		Name:         "Security Drone",
		Category:     "security_drone",
		Manufacturer: "Generic",
		Model:        "SecurityDrone",
		Description:  "Autonomous patrol drone for perimeter surveillance and incident response",
		Flags: spec.Flags{
			HasHardwareDriver:  true,
			HasDigitalAsset:    true,
			HasSimulationModel: true,
		},
		DriverClass:        "drivers.SecurityDroneDriver",
		AssetClass:         "assets.SecurityDrone",
		FallbackAssetClass: "assets.GenericDrone",
		SimulationModels:   []string{"airsim", "gazebo", "unity"},
		ExtendedCapabilities: map[string]bool{
			"has_thermal_imaging":    true,
			"has_night_vision":       true,
			"has_ai_analytics":       true,
			"has_autonomous_patrol":  true,
			"has_emergency_response": true,
			"has_two_way_audio":      true,
		},
		Capabilities: []spec.Capability{
			{
				Name: "security_flight",
				Commands: []string{
					"takeoff", "land", "patrol_start", "patrol_stop",
					"goto_waypoint", "return_home", "emergency_land",
				},
				Description: "Autonomous patrol flight and waypoint navigation",
			},
			{
				Name:        "surveillance_systems",
				Commands:    []string{"camera_on", "camera_off", "thermal_on", "thermal_off", "spotlight_toggle"},
				Description: "On-board surveillance payloads",
			},
			{
				Name:        "ai_security_analytics",
				Commands:    []string{"detect_intruders", "track_target", "classify_threat"},
				Description: "On-board threat detection and tracking",
			},
			{
				Name:        "telemetry",
				Commands:    []string{"battery_status", "gps_position", "flight_time", "signal_strength"},
				Description: "Flight and payload telemetry",
			},
		},
		Protocols: []spec.Protocol{
			{Type: "mavlink", Port: 14550, Commands: []string{"takeoff", "land", "goto_waypoint"}},
			{Type: "rtsp", Port: 554, Commands: []string{"camera_on", "thermal_on"}},
			{Type: "tcp", Port: 5760, Commands: []string{"telemetry"}},
		},
		Connection: &spec.ConnectionInfo{Type: "radio", DefaultIP: "192.168.1.1"},
		SetupFields: []spec.SetupField{
			{Name: "name", Type: spec.FieldString, Label: "Drone Name", Default: "Patrol-01", Required: true},
			{Name: "base_station_ip", Type: spec.FieldIPv4, Label: "Base Station IP", Default: "192.168.1.1", Required: true},
			{Name: "patrol_zone", Type: spec.FieldString, Label: "Patrol Zone", Default: "PERIMETER"},
			{Name: "max_altitude", Type: spec.FieldInt, Label: "Maximum Altitude (m)", Default: 120, Help: "Legal altitude ceiling for patrol flights"},
			{Name: "enable_thermal", Type: spec.FieldBoolean, Label: "Enable Thermal Imaging", Default: true},
			{Name: "auto_patrol", Type: spec.FieldBoolean, Label: "Autonomous Patrol", Default: false},
		},
		Specs: map[string]any{
			"flight_performance": map[string]any{
				"max_flight_time_min": 45,
				"max_speed_ms":        15,
				"max_altitude_m":      120,
				"payload_capacity_kg": 2.5,
			},
		},
	}
}

func perimeterGuardAI() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           "ai/perimeter_guard",
		Name:         "Perimeter Guard AI",
		Category:     "ai_service",
		Manufacturer: "SpecWave",
		Model:        "PerimeterGuard",
		Description:  "AI orchestration layer for perimeter monitoring and autonomous patrol control",
		Flags: spec.Flags{
			HasDigitalAsset:    true,
			HasSimulationModel: true,
		},
		AssetClass:       "assets.PerimeterGuard",
		SimulationModels: []string{"unity"},
		ExtendedCapabilities: map[string]bool{
			"real_time_monitoring": true,
			"multimodal_fusion":    true,
			"autonomous_dispatch":  true,
		},
		Capabilities: []spec.Capability{
			{
				Name:        "patrol_management",
				Commands:    []string{"patrol_start", "patrol_stop", "follow_route"},
				Description: "Manage patrol tasks for connected security twins",
			},
			{
				Name:        "threat_analytics",
				Commands:    []string{"detect_intruders", "identify_threats", "analyze_behavior"},
				Description: "Real-time threat detection and verification",
			},
			{
				Name:        "alerting",
				Commands:    []string{"create_alert", "notify_team"},
				Description: "Emit alerts and notifications to downstream systems",
			},
		},
	}
}

func companyHeadquarters() *spec.DeviceSpec {
	return &spec.DeviceSpec{
		ID:           spec.NamespaceInfrastructure + "/headquarters",
		Name:         "Company Headquarters",
		Category:     "facility",
		Manufacturer: "SpecWave",
		Model:        "HQ-Digital-Twin",
		Description:  "Aggregated facility digital twin describing floors, zones, and security endpoints",
		Flags: spec.Flags{
			HasDigitalAsset:    true,
			HasSimulationModel: true,
		},
		AssetClass:       "assets.FacilityTwin",
		SimulationModels: []string{"unity", "unreal"},
		ExtendedCapabilities: map[string]bool{
			"multi_level":     true,
			"supports_agents": true,
		},
		Capabilities: []spec.Capability{
			{
				Name:        "facility_overview",
				Commands:    []string{"list_zones", "get_zone_status", "create_alert"},
				Description: "Facility-wide monitoring and alerting",
			},
		},
	}
}
