package cli

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/rileyhilliard/spin/internal/errors"
	"github.com/rileyhilliard/spin/internal/selection"
)

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
	ErrCodeConfigNotFound = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "CONFIG_INVALID"
	ErrCodeNotEnoughNames = "NOT_ENOUGH_NAMES"
	ErrCodeSpinRejected   = "SPIN_REJECTED"
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeUnknown        = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: true,
		Data:    data,
	})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	})
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	if spinErr, ok := err.(*errors.Error); ok {
		return &JSONError{
			Code:       mapErrorCode(spinErr),
			Message:    spinErr.Message,
			Suggestion: spinErr.Suggestion,
		}
	}

	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(err *errors.Error) string {
	switch {
	case errors.IsCode(err, errors.ErrConfig):
		msgLower := strings.ToLower(err.Message)
		if strings.Contains(msgLower, "not found") || strings.Contains(msgLower, "couldn't find") {
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.IsCode(err, errors.ErrRoster):
		if errors.Is(err, selection.ErrNotEnoughEntries) {
			return ErrCodeNotEnoughNames
		}
		return ErrCodeInvalidInput
	case errors.IsCode(err, errors.ErrSpin):
		return ErrCodeSpinRejected
	case errors.IsCode(err, errors.ErrInput):
		return ErrCodeInvalidInput
	}
	return ErrCodeUnknown
}
