package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/spin/internal/errors"
)

// Bounds for the animation settings.
const (
	MinSpinDuration = 500 * time.Millisecond
	MaxSpinDuration = 30 * time.Second
	MaxMinTurns     = 20
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but spin only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest spin release.")
	}

	if err := validatePalette(cfg.Palette); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'palette' list in your .spin.yaml.")
	}

	if cfg.LabelMax < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("label_max must be at least 1, got %d", cfg.LabelMax),
			"The default is 15.")
	}

	if err := validateSpin(cfg.Spin); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'spin' section in your .spin.yaml.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .spin.yaml.")
	}

	return nil
}

func validatePalette(palette []string) error {
	if len(palette) == 0 {
		return fmt.Errorf("palette needs at least one colour")
	}
	for i, c := range palette {
		if !IsColor(c) {
			return fmt.Errorf("palette entry %d (%q) isn't a colour - use #rrggbb or an ANSI code 0-255", i, c)
		}
	}
	return nil
}

// IsColor reports whether s is a hex colour or an ANSI 256 colour code.
func IsColor(s string) bool {
	s = strings.TrimSpace(s)
	if hexColor.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

func validateSpin(spin SpinConfig) error {
	if spin.Duration < MinSpinDuration || spin.Duration > MaxSpinDuration {
		return fmt.Errorf("spin.duration %s is outside %s-%s", spin.Duration, MinSpinDuration, MaxSpinDuration)
	}
	if spin.MinTurns < 1 || spin.MinTurns > MaxMinTurns {
		return fmt.Errorf("spin.min_turns must be between 1 and %d, got %d", MaxMinTurns, spin.MinTurns)
	}
	return nil
}

func validateOutput(out OutputConfig) error {
	switch out.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("output.color must be auto, always, or never, got %q", out.Color)
	}
}
