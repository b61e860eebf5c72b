package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rileyhilliard/minipadd/internal/config"
	"github.com/rileyhilliard/minipadd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineMode_DefaultValue(t *testing.T) {
	oldMode := machineMode
	defer func() { machineMode = oldMode }()

	machineMode = false
	assert.False(t, MachineMode())

	machineMode = true
	assert.True(t, MachineMode())
}

func TestWriteJSONSuccess_BasicData(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSONSuccess(&buf, map[string]string{"key": "value"}))

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	assert.True(t, env.Success)
	assert.Nil(t, env.Error)

	dataMap, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "value", dataMap["key"])
}

func TestWriteJSONSuccess_NilData(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSONSuccess(&buf, nil))
	assert.NotContains(t, buf.String(), `"data"`)
}

func TestWriteJSONError_AllFields(t *testing.T) {
	var buf bytes.Buffer

	err := WriteJSONError(&buf, ErrCodeDisplayFailed, "SPI busy", "Check the pHAT", map[string]int{"attempts": 2})
	require.NoError(t, err)

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeDisplayFailed, env.Error.Code)
	assert.Equal(t, "SPI busy", env.Error.Message)
	assert.Equal(t, "Check the pHAT", env.Error.Suggestion)
	assert.NotNil(t, env.Error.Details)
}

func TestWriteJSONFromError_GenericError(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSONFromError(&buf, fmt.Errorf("boom")))

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeUnknown, env.Error.Code)
	assert.Equal(t, "boom", env.Error.Message)
}

func TestErrorToJSON_NilReturnsNil(t *testing.T) {
	assert.Nil(t, ErrorToJSON(nil))
}

func TestErrorToJSON_InternalCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "invalid config",
			err:  errors.New(errors.ErrConfig, "Invalid configuration", ""),
			want: ErrCodeConfigInvalid,
		},
		{
			name: "unreadable env file",
			err:  errors.New(errors.ErrConfig, "Failed to read env file .env", ""),
			want: ErrCodeConfigMissing,
		},
		{
			name: "setupVars unreadable",
			err:  errors.New(errors.ErrCredentials, "Cannot read /etc/pihole/setupVars.conf", ""),
			want: ErrCodeCredentialsUnreadable,
		},
		{
			name: "api unreachable",
			err:  errors.New(errors.ErrNetwork, "Pi-hole API at pi.hole:80 is unreachable", ""),
			want: ErrCodePiholeUnreachable,
		},
		{
			name: "api bad status",
			err:  errors.New(errors.ErrNetwork, "Pi-hole API returned 403 Forbidden", ""),
			want: ErrCodePiholeBadResponse,
		},
		{
			name: "host query",
			err:  errors.New(errors.ErrSystem, "Interface wlan0 not found", ""),
			want: ErrCodeHostQueryFailed,
		},
		{
			name: "display",
			err:  errors.New(errors.ErrDisplay, "Failed to update display", ""),
			want: ErrCodeDisplayFailed,
		},
		{
			name: "wrapped structured error",
			err:  fmt.Errorf("cycle: %w", errors.New(errors.ErrSystem, "sensors", "")),
			want: ErrCodeHostQueryFailed,
		},
		{
			name: "unmapped code",
			err:  errors.New("OTHER", "something", ""),
			want: ErrCodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ErrorToJSON(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Code)
		})
	}
}

func TestErrorToJSON_FieldDetails(t *testing.T) {
	_, err := config.Load(map[string]string{}, config.VariantTerminal)
	require.Error(t, err)

	got := ErrorToJSON(err)
	require.NotNil(t, got)
	assert.Equal(t, ErrCodeConfigMissing, got.Code)
	assert.Equal(t, "Invalid configuration", got.Message)

	details, ok := got.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, config.KeyPiholeToken, details["field"])
	assert.Equal(t, "missing field", details["reason"])
}

func TestErrorToJSON_InvalidFieldKeepsInvalidCode(t *testing.T) {
	_, err := config.Load(map[string]string{config.KeyRefreshPeriod: "soon"}, config.VariantInky)
	require.Error(t, err)

	got := ErrorToJSON(err)
	assert.Equal(t, ErrCodeConfigInvalid, got.Code)
	details, ok := got.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, config.KeyRefreshPeriod, details["field"])
}

func TestJSONError_OmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(JSONError{Code: ErrCodeUnknown, Message: "x"})
	require.NoError(t, err)

	assert.NotContains(t, string(data), "suggestion")
	assert.NotContains(t, string(data), "details")
}

func TestErrorCodes_AreUnique(t *testing.T) {
	codes := []string{
		ErrCodeConfigMissing,
		ErrCodeConfigInvalid,
		ErrCodeCredentialsUnreadable,
		ErrCodePiholeUnreachable,
		ErrCodePiholeBadResponse,
		ErrCodeHostQueryFailed,
		ErrCodeDisplayFailed,
		ErrCodeUnknown,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
