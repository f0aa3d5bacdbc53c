package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSpin mirrors SpinConfig with the duration as a string, so written
// files read "4s" rather than nanoseconds.
type fileSpin struct {
	Duration string `yaml:"duration"`
	MinTurns int    `yaml:"min_turns"`
}

type fileConfig struct {
	Version   int          `yaml:"version"`
	Names     []string     `yaml:"names"`
	NamesFile string       `yaml:"names_file,omitempty"`
	Seed      uint64       `yaml:"seed,omitempty"`
	Palette   []string     `yaml:"palette,flow"`
	LabelMax  int          `yaml:"label_max"`
	Spin      fileSpin     `yaml:"spin"`
	Output    OutputConfig `yaml:"output"`
}

const fileHeader = `# spin configuration
# Docs: spin --help
`

// Marshal renders cfg as the YAML written by 'spin init'.
func Marshal(cfg *Config) ([]byte, error) {
	fc := fileConfig{
		Version:   cfg.Version,
		Names:     cfg.Names,
		NamesFile: cfg.NamesFile,
		Seed:      cfg.Seed,
		Palette:   cfg.Palette,
		LabelMax:  cfg.LabelMax,
		Spin: fileSpin{
			Duration: cfg.Spin.Duration.String(),
			MinTurns: cfg.Spin.MinTurns,
		},
		Output: cfg.Output,
	}
	if fc.Names == nil {
		fc.Names = []string{}
	}

	var buf bytes.Buffer
	buf.WriteString(fileHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fc); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Write marshals cfg to path with 0644 permissions.
func Write(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
