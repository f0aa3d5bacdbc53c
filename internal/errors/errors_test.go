package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrRoster,
		ErrSpin,
		ErrInput,
		ErrUI,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .spin.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "roster error",
			code:       ErrRoster,
			message:    "Need at least 2 names to spin",
			suggestion: "Add more names with --name",
		},
		{
			name:       "spin error",
			code:       ErrSpin,
			message:    "The wheel is already spinning",
			suggestion: "Wait for the current spin to finish",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name:          "basic error formatting",
			err:           New(ErrConfig, "Invalid configuration", "Check .spin.yaml syntax"),
			expectedParts: []string{"Invalid configuration", "Check .spin.yaml syntax"},
		},
		{
			name:          "error with failure symbol",
			err:           New(ErrSpin, "Spin rejected", "Try again"),
			expectedParts: []string{"✗", "Spin rejected"},
		},
		{
			name:          "error without suggestion",
			err:           New(ErrInput, "Bad input", ""),
			expectedParts: []string{"Bad input"},
			notExpected:   []string{"\n\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("not enough entries")
	wrapped := Wrap(cause, "Could not spin")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrSpin, wrapped.Code, "Wrap should default to ErrSpin code")
	assert.Equal(t, "Could not spin", wrapped.Message)
	assert.Equal(t, cause, wrapped.Cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("file not found")
	wrapped := WrapWithCode(cause, ErrConfig, "Failed to load config", "Run 'spin init'")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrConfig, wrapped.Code)
	assert.Equal(t, "Run 'spin init'", wrapped.Suggestion)
	assert.Contains(t, wrapped.Error(), "file not found")
}

func TestErrorsIsAndAs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := fmt.Errorf("outer: %w", WrapWithCode(cause, ErrRoster, "Roster error", ""))

	assert.True(t, errors.Is(wrapped, cause))
	assert.True(t, Is(wrapped, cause))
	assert.False(t, Is(wrapped, errors.New("specific error")))

	var spinErr *Error
	require.True(t, errors.As(wrapped, &spinErr))
	assert.Equal(t, ErrRoster, spinErr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrSpin))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("yaml: line 3: mapping values are not allowed"),
		ErrConfig,
		"Could not parse .spin.yaml",
		"Run: spin init --force",
	)

	lines := strings.Split(err.Error(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "✗"), "first line should start with failure symbol")
	assert.Contains(t, lines[0], "Could not parse .spin.yaml")
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOk   bool
	}{
		{"ExitError returns code", NewExitError(2), 2, true},
		{"wrapped ExitError", fmt.Errorf("pick: %w", NewExitError(3)), 3, true},
		{"standard error", errors.New("standard error"), 0, false},
		{"nil error", nil, 0, false},
		{"structured Error", New(ErrSpin, "test", ""), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := GetExitCode(tt.err)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}

	assert.Equal(t, "exit code 2", NewExitError(2).Error())
}
