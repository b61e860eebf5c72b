package config

import (
	"strconv"
	"strings"

	"github.com/rileyhilliard/minipadd/internal/errors"
	"github.com/spf13/viper"
)

// Load builds Settings for the given variant from a flat string-keyed source,
// typically the process environment. Every schema field is cast to its
// declared kind; a missing required field or a failed cast aborts the load.
func Load(source map[string]string, variant Variant) (*Settings, error) {
	s := &Settings{Variant: variant}

	for _, f := range Schema {
		if f.Variants&variant == 0 {
			continue
		}

		raw, ok := source[f.Name]
		if !ok {
			if f.Required {
				return nil, configError(&FieldError{Field: f.Name, Reason: MissingField, Expected: f.Kind})
			}
			raw = f.Default
		}

		v, err := cast(f, raw)
		if err != nil {
			return nil, configError(err)
		}
		f.assign(s, v)
	}

	if err := validate(s); err != nil {
		return nil, configError(err)
	}

	return s, nil
}

// cast converts raw to the field's declared kind.
func cast(f Field, raw string) (value, error) {
	switch f.Kind {
	case KindBool:
		return value{b: ParseBool(raw)}, nil
	case KindInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return value{}, &FieldError{Field: f.Name, Reason: InvalidType, Expected: f.Kind, Value: raw}
		}
		return value{i: n}, nil
	default:
		return value{s: raw}, nil
	}
}

// ParseBool reports whether s is one of "true", "yes" or "1", ignoring case.
// Anything else, including the empty string, is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1":
		return true
	default:
		return false
	}
}

// EnvSource collects the schema keys recognized by variant from the process
// environment, optionally layered over a dotenv file. Environment variables
// take precedence over the file. A variable that is set but empty is still
// provided, so Load casts it like any other value.
func EnvSource(envFile string, variant Variant) (map[string]string, error) {
	v := viper.New()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read env file "+envFile,
				"Check the path passed to --env-file, or drop the flag to use the environment only")
		}
	}

	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	source := make(map[string]string)
	for _, key := range Keys(variant) {
		if v.IsSet(key) {
			source[key] = v.GetString(key)
		}
	}
	return source, nil
}

// configError wraps a FieldError with the CONFIG code and a hint naming the variable.
func configError(err error) error {
	fe, ok := err.(*FieldError)
	if !ok {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid configuration", "")
	}

	var suggestion string
	switch fe.Reason {
	case MissingField:
		suggestion = "Set " + fe.Field + " in the environment or the --env-file"
	case InvalidType:
		suggestion = "Set " + fe.Field + " to a valid " + fe.Expected.String()
	default:
		suggestion = "Fix the value of " + fe.Field
	}
	return errors.WrapWithCode(fe, errors.ErrConfig, "Invalid configuration", suggestion)
}
