package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// DefaultPalette is the sector colour cycle used when none is configured.
var DefaultPalette = []string{
	"#ff595e", // red
	"#ffca3a", // yellow
	"#8ac926", // green
	"#1982c4", // blue
	"#6a4c93", // purple
}

// Config represents the complete .spin.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Names preloaded onto the wheel at startup.
	Names []string `yaml:"names" mapstructure:"names"`

	// NamesFile is a text file with one name per line, loaded after Names.
	// Supports ~ and ${HOME}/${USER} expansion.
	NamesFile string `yaml:"names_file" mapstructure:"names_file"`

	// Seed makes spins reproducible. Zero means a fresh random seed each run.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`

	// Palette is the list of sector colours, as hex (#rrggbb) or ANSI codes (0-255).
	Palette []string `yaml:"palette" mapstructure:"palette"`

	// LabelMax is the longest label drawn on a sector before truncation.
	LabelMax int `yaml:"label_max" mapstructure:"label_max"`

	Spin   SpinConfig   `yaml:"spin" mapstructure:"spin"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// SpinConfig controls the terminal wheel animation.
type SpinConfig struct {
	// Duration is roughly how long the animation runs.
	Duration time.Duration `yaml:"duration" mapstructure:"duration"`

	// MinTurns is how many full laps the highlight makes before slowing down.
	MinTurns int `yaml:"min_turns" mapstructure:"min_turns"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	palette := make([]string, len(DefaultPalette))
	copy(palette, DefaultPalette)

	return &Config{
		Version:  CurrentConfigVersion,
		Names:    []string{},
		Palette:  palette,
		LabelMax: 15,
		Spin: SpinConfig{
			Duration: 4 * time.Second,
			MinTurns: 3,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
