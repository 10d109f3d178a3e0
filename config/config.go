// Package config loads the yaml configuration of the scene server
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	Tick   Duration     `yaml:"tick"`
	Scene  SceneConfig  `yaml:"scene"`
	Demo   DemoConfig   `yaml:"demo"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type SceneConfig struct {
	AutoNames bool  `yaml:"auto_names"`
	Seed      int64 `yaml:"seed"`
}

// DemoConfig describes the rig built by the serve and dump commands:
// Arms chains of Depth nodes around the root
type DemoConfig struct {
	Arms    int     `yaml:"arms"`
	Depth   int     `yaml:"depth"`
	Spin    float64 `yaml:"spin"` // degrees per second
	Spacing float64 `yaml:"spacing"`
}

// Duration is time.Duration written as "16ms" in yaml
type Duration time.Duration

func (d Duration) Duration() time.Duration { return time.Duration(d) }

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*d = Duration(v)
	return nil
}

func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Server: ServerConfig{Addr: ":8000"},
		Tick:   Duration(16 * time.Millisecond),
		Scene:  SceneConfig{AutoNames: true},
		Demo: DemoConfig{
			Arms:    3,
			Depth:   3,
			Spin:    45,
			Spacing: 2,
		},
	}
}

// Parse reads yaml over the defaults, missing keys keep their default value
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "Failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read config %q", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Tick <= 0 {
		return errors.Errorf("tick must be positive, got %v", c.Tick.Duration())
	}
	if c.Demo.Arms < 0 || c.Demo.Depth < 0 {
		return errors.Errorf("demo arms and depth can't be negative, got %d and %d", c.Demo.Arms, c.Demo.Depth)
	}
	return nil
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.Errorf("Unknown log level %q", s)
}
