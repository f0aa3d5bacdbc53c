package cli

import (
	"github.com/rileyhilliard/spin/internal/config"
	"github.com/rileyhilliard/spin/internal/logger"
	"github.com/rileyhilliard/spin/internal/selection"
	"github.com/rileyhilliard/spin/internal/ui"
	"github.com/rileyhilliard/spin/internal/wheel"
	"github.com/spf13/cobra"
)

// session is everything a command needs to build a wheel.
type session struct {
	Config     *config.Config
	ConfigPath string
	Names      []string
	Seed       uint64
	Seeded     bool
	Log        logger.Logger

	// Source overrides the random source; nil derives it from Seed.
	Source selection.Source
}

// loadSession loads and validates the config, applies colour settings and
// gathers names from config, --name flags and args, in that order.
func loadSession(cmd *cobra.Command, args []string) (*session, error) {
	cfg, path, err := config.LoadOrDefault(globalFlags.Config)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if globalFlags.NoColor {
		ui.DisableColors()
	} else {
		ui.SetColorMode(cfg.Output.Color)
	}

	names, err := config.LoadNames(cfg)
	if err != nil {
		return nil, err
	}
	names = append(names, globalFlags.Names...)
	names = append(names, args...)

	s := &session{
		Config:     cfg,
		ConfigPath: path,
		Names:      names,
		Log:        logger.NewEnvLogger("[spin]"),
	}

	if seed, ok := seedFromFlags(cmd); ok {
		s.Seed, s.Seeded = seed, true
	} else if cfg.Seed != 0 {
		s.Seed, s.Seeded = cfg.Seed, true
	}

	if path != "" {
		s.Log.Debug("loaded config from %s", path)
	}
	return s, nil
}

// source returns the random source for this run.
func (s *session) source() selection.Source {
	if s.Source != nil {
		return s.Source
	}
	if s.Seeded {
		return selection.NewSeededSource(s.Seed)
	}
	return selection.DefaultSource()
}

// newWheel builds a wheel preloaded with the session's names.
func (s *session) newWheel(log logger.Logger) *wheel.Wheel {
	return wheel.New(wheel.Options{
		Names:       s.Names,
		Source:      s.source(),
		Logger:      log,
		PaletteSize: len(s.Config.Palette),
		LabelMax:    s.Config.LabelMax,
	})
}
