package spec

import (
	"fmt"
	"math"
	"net"
)

// Setup field types accepted by ValidateConfig.
const (
	FieldString  = "string"
	FieldInt     = "int"
	FieldFloat   = "float"
	FieldBoolean = "boolean"
	FieldSelect  = "select"
	FieldIPv4    = "ipv4"
)

// ValidateConfig checks a device configuration against the spec's setup
// fields: required fields must be present and every supplied value must
// match its declared type. Returns an error wrapping ErrInvalidConfig
// describing the first failure found.
//
// Values typically arrive from JSON or YAML decoding, so numeric values
// are accepted as int, int64, or float64.
func ValidateConfig(s *DeviceSpec, config map[string]any) error {
	for _, field := range s.SetupFields {
		value, present := config[field.Name]
		if !present {
			if field.Required {
				return fmt.Errorf("%w: missing required field %q", ErrInvalidConfig, field.Name)
			}
			continue
		}
		if err := validateFieldValue(field, value); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldValue checks one configuration value against its field type.
func validateFieldValue(field SetupField, value any) error {
	switch field.Type {
	case FieldString, "":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%w: field %q must be a string", ErrInvalidConfig, field.Name)
		}

	case FieldInt:
		if !isIntegral(value) {
			return fmt.Errorf("%w: field %q must be an integer", ErrInvalidConfig, field.Name)
		}

	case FieldFloat:
		switch value.(type) {
		case int, int64, float64:
		default:
			return fmt.Errorf("%w: field %q must be a number", ErrInvalidConfig, field.Name)
		}

	case FieldBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%w: field %q must be a boolean", ErrInvalidConfig, field.Name)
		}

	case FieldSelect:
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: field %q must be a string", ErrInvalidConfig, field.Name)
		}
		if len(field.Options) > 0 && !containsString(field.Options, str) {
			return fmt.Errorf("%w: field %q must be one of %v", ErrInvalidConfig, field.Name, field.Options)
		}

	case FieldIPv4:
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: field %q must be a string", ErrInvalidConfig, field.Name)
		}
		ip := net.ParseIP(str)
		if ip == nil || ip.To4() == nil {
			return fmt.Errorf("%w: field %q must be a valid IPv4 address", ErrInvalidConfig, field.Name)
		}

	default:
		return fmt.Errorf("%w: field %q has unknown type %q", ErrInvalidConfig, field.Name, field.Type)
	}
	return nil
}

// isIntegral reports whether a decoded value represents a whole number.
// JSON decoding produces float64 for all numbers.
func isIntegral(value any) bool {
	switch v := value.(type) {
	case int, int64:
		return true
	case float64:
		return v == math.Trunc(v)
	}
	return false
}

// containsString reports whether list contains s.
func containsString(list []string, s string) bool {
	for _, candidate := range list {
		if candidate == s {
			return true
		}
	}
	return false
}
