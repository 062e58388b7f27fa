// Package config loads the harbor CLI configuration from config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/harbor/internal/paths"
	"github.com/mesh-intelligence/harbor/pkg/types"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config keys.
const (
	KeyLogLevel     = "log_level"
	KeyLogFormat    = "log_format"
	KeyColor        = "color"
	KeyTemperatures = "temperatures"
)

// Defaults applied when config.yaml omits a key.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
	DefaultColor     = true
)

// ErrInvalidTemperature reports a temperatures entry without a cargo name.
var ErrInvalidTemperature = errors.New("temperature entry needs a cargo name")

// Temperature is one refrigerated cargo entry. Entries are a list rather
// than a map because viper folds map keys to lower case and cargo names are
// case sensitive.
type Temperature struct {
	Cargo   string  `mapstructure:"cargo" yaml:"cargo"`
	Minimum float64 `mapstructure:"minimum" yaml:"minimum"`
}

// Config is the CLI configuration.
type Config struct {
	LogLevel     string        `mapstructure:"log_level" yaml:"log_level"`
	LogFormat    string        `mapstructure:"log_format" yaml:"log_format"`
	Color        bool          `mapstructure:"color" yaml:"color"`
	Temperatures []Temperature `mapstructure:"temperatures" yaml:"temperatures,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Color:     DefaultColor,
	}
}

// Load reads config.yaml from dir. A missing file is not an error; the
// defaults apply. HARBOR_LOG_LEVEL and HARBOR_LOG_FORMAT override the file.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
	v.SetDefault(KeyColor, DefaultColor)
	v.SetConfigFile(paths.ConfigFile(dir))
	v.SetConfigType("yaml")
	_ = v.BindEnv(KeyLogLevel, "HARBOR_LOG_LEVEL")
	_ = v.BindEnv(KeyLogFormat, "HARBOR_LOG_FORMAT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	for i, t := range cfg.Temperatures {
		if t.Cargo == "" {
			return nil, fmt.Errorf("temperatures[%d]: %w", i, ErrInvalidTemperature)
		}
	}
	return cfg, nil
}

// TemperatureTable returns the default cargo table extended and overridden
// by the configured entries.
func (c *Config) TemperatureTable() types.TemperatureTable {
	extra := make(types.TemperatureTable, len(c.Temperatures))
	for _, t := range c.Temperatures {
		extra[t.Cargo] = t.Minimum
	}
	return types.DefaultTemperatures().Merge(extra)
}

// WriteDefault creates config.yaml in dir with the default settings. An
// existing file is left alone. Returns the path and whether it was written.
func WriteDefault(dir string) (string, bool, error) {
	path := paths.ConfigFile(dir)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("create config directory: %w", err)
	}

	cfg := Default()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return "", false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", false, err
	}
	return path, true, nil
}
