package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"strings"

	"github.com/rileyhilliard/minipadd/internal/config"
	"github.com/rileyhilliard/minipadd/internal/errors"
)

// Machine mode flag - when true, outputs JSON and suppresses human-friendly decorations
var machineMode bool

// MachineMode returns true if machine-readable output is enabled
func MachineMode() bool {
	return machineMode
}

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigMissing         = "CONFIG_MISSING"
	ErrCodeConfigInvalid         = "CONFIG_INVALID"
	ErrCodeCredentialsUnreadable = "CREDENTIALS_UNREADABLE"
	ErrCodePiholeUnreachable     = "PIHOLE_UNREACHABLE"
	ErrCodePiholeBadResponse     = "PIHOLE_BAD_RESPONSE"
	ErrCodeHostQueryFailed       = "HOST_QUERY_FAILED"
	ErrCodeDisplayFailed         = "DISPLAY_FAILED"
	ErrCodeUnknown               = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	env := JSONEnvelope{
		Success: true,
		Data:    data,
	}
	return writeJSONEnvelope(w, env)
}

// WriteJSONError writes an error response to the writer.
func WriteJSONError(w io.Writer, code, message, suggestion string, details interface{}) error {
	env := JSONEnvelope{
		Success: false,
		Error: &JSONError{
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
			Details:    details,
		},
	}
	return writeJSONEnvelope(w, env)
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	env := JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	}
	return writeJSONEnvelope(w, env)
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
// Rejected configuration fields are reported in Details.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	var e *errors.Error
	if !stderrors.As(err, &e) {
		return &JSONError{
			Code:    ErrCodeUnknown,
			Message: err.Error(),
		}
	}

	jsonErr := &JSONError{
		Code:       mapErrorCode(e.Code, e.Message),
		Message:    e.Message,
		Suggestion: e.Suggestion,
	}

	var fe *config.FieldError
	if stderrors.As(err, &fe) {
		if fe.Reason == config.MissingField {
			jsonErr.Code = ErrCodeConfigMissing
		}
		jsonErr.Details = map[string]interface{}{
			"field":  fe.Field,
			"reason": fe.Reason.String(),
		}
	}
	return jsonErr
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(internalCode, message string) string {
	switch internalCode {
	case errors.ErrConfig:
		if strings.Contains(strings.ToLower(message), "failed to read") {
			return ErrCodeConfigMissing
		}
		return ErrCodeConfigInvalid
	case errors.ErrCredentials:
		return ErrCodeCredentialsUnreadable
	case errors.ErrNetwork:
		if strings.Contains(strings.ToLower(message), "unreachable") {
			return ErrCodePiholeUnreachable
		}
		return ErrCodePiholeBadResponse
	case errors.ErrSystem:
		return ErrCodeHostQueryFailed
	case errors.ErrDisplay:
		return ErrCodeDisplayFailed
	}

	return ErrCodeUnknown
}
