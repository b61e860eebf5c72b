package config

import (
	"fmt"
	"strings"
)

// Reason classifies a FieldError.
type Reason int

const (
	// MissingField means a field without a default was not provided.
	MissingField Reason = iota
	// InvalidType means the value could not be cast to the declared kind.
	InvalidType
	// InvalidValue means the value was cast but is out of range.
	InvalidValue
)

// String returns a human-readable reason.
func (r Reason) String() string {
	switch r {
	case MissingField:
		return "missing field"
	case InvalidType:
		return "invalid type"
	default:
		return "invalid value"
	}
}

// FieldError describes why a single configuration field was rejected.
type FieldError struct {
	Field    string
	Reason   Reason
	Expected Kind
	Value    string
	Detail   string
}

func (e *FieldError) Error() string {
	switch e.Reason {
	case MissingField:
		return fmt.Sprintf("the %s field is required", e.Field)
	case InvalidType:
		return fmt.Sprintf("unable to cast value %q to type %q for %q field", e.Value, e.Expected, e.Field)
	default:
		return fmt.Sprintf("invalid value %q for %q field: %s", e.Value, e.Field, e.Detail)
	}
}

// Screen colors supported by the Inky pHAT.
var validColors = map[string]bool{
	"yellow": true,
	"red":    true,
	"black":  true,
}

// validate range-checks values that passed their type cast.
func validate(s *Settings) error {
	if s.PiholePort <= 0 || s.PiholePort > 65535 {
		return invalid(KeyPiholePort, fmt.Sprint(s.PiholePort), "must be 1..65535")
	}
	if s.RefreshPeriod <= 0 {
		return invalid(KeyRefreshPeriod, fmt.Sprint(s.RefreshPeriod), "must be a positive number of seconds")
	}

	s.ScreenColor = strings.ToLower(strings.TrimSpace(s.ScreenColor))
	if !validColors[s.ScreenColor] {
		return invalid(KeyScreenColor, s.ScreenColor, "must be one of yellow, red, black")
	}

	s.LogFormat = strings.ToLower(strings.TrimSpace(s.LogFormat))
	if s.LogFormat != "console" && s.LogFormat != "json" {
		return invalid(KeyLogFormat, s.LogFormat, "must be console or json")
	}

	if s.Variant == VariantTerminal {
		switch s.ScreenRotation {
		case 0, 90, 180, 270:
		default:
			return invalid(KeyScreenRotation, fmt.Sprint(s.ScreenRotation), "must be 0, 90, 180 or 270")
		}
		if s.ScreenTargetFPS <= 0 {
			return invalid(KeyScreenTargetFPS, fmt.Sprint(s.ScreenTargetFPS), "must be positive")
		}
	}

	return nil
}

func invalid(field, val, detail string) *FieldError {
	return &FieldError{Field: field, Reason: InvalidValue, Value: val, Detail: detail}
}
