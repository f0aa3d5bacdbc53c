package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/spin/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".spin.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/spin"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix scopes environment overrides, e.g. SPIN_SEED=7.
	EnvPrefix = "SPIN"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'spin init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .spin.yaml in current directory
// 3. .spin.yaml in parent directories (stops at git root or home)
// 4. ~/.config/spin/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandTilde(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	home, _ := os.UserHomeDir()
	if path := findInParents(cwd, home); path != "" {
		return path, nil
	}

	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// findInParents walks up from dir looking for ConfigFileName. It stops at
// the filesystem root, at home, or after checking a git root.
func findInParents(dir, home string) string {
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		if home != "" && parent == home {
			return ""
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return ""
		}
	}
}

// LoadOrDefault finds and loads the config, or returns defaults (with
// environment overrides applied) when no file exists. The returned path is
// empty in the default case.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		cfg, err := parseConfig(newViper(), "")
		return cfg, "", err
	}

	cfg, err := Load(path)
	return cfg, path, err
}

// newViper builds a viper instance with defaults and SPIN_* env overrides.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults registers every key so env overrides apply during Unmarshal.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("names", def.Names)
	v.SetDefault("names_file", "")
	v.SetDefault("seed", 0)
	v.SetDefault("palette", def.Palette)
	v.SetDefault("label_max", def.LabelMax)
	v.SetDefault("spin.duration", def.Spin.Duration.String())
	v.SetDefault("spin.min_turns", def.Spin.MinTurns)
	v.SetDefault("output.color", def.Output.Color)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		where := "your environment"
		if path != "" {
			where = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+where)
	}

	if cfg.NamesFile != "" {
		cfg.NamesFile = resolvePath(Expand(cfg.NamesFile), configDir(path))
	}

	return cfg, nil
}

// LoadNames returns cfg.Names followed by the contents of cfg.NamesFile.
func LoadNames(cfg *Config) ([]string, error) {
	names := append([]string{}, cfg.Names...)
	if cfg.NamesFile == "" {
		return names, nil
	}

	fromFile, err := ReadNamesFile(cfg.NamesFile)
	if err != nil {
		return nil, err
	}
	return append(names, fromFile...), nil
}

// ReadNamesFile reads one name per line. Blank lines and lines starting
// with # are skipped.
func ReadNamesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't open names file: "+path,
			"Check names_file in your config, or pass names with --name")
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't read names file: "+path,
			"Make sure it is a plain text file with one name per line")
	}
	return names, nil
}

// configDir returns the directory containing the config file.
func configDir(configPath string) string {
	if configPath == "" {
		cwd, _ := os.Getwd()
		return cwd
	}
	return filepath.Dir(configPath)
}

// resolvePath makes p absolute relative to base.
func resolvePath(p, base string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
