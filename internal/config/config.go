// Package config loads mazefinder settings from defaults, an optional config
// file and MAZEFINDER_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. MAZEFINDER_SERVER_ADDR.
const EnvPrefix = "MAZEFINDER"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds application configuration.
type Config struct {
	Mazes     MazesConfig     `mapstructure:"mazes"`
	Animation AnimationConfig `mapstructure:"animation"`
	Search    SearchConfig    `mapstructure:"search"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
}

// MazesConfig lists the directories scanned for *.txt maze files.
type MazesConfig struct {
	Dirs []string `mapstructure:"dirs"`
}

// AnimationConfig holds terminal animation settings.
type AnimationConfig struct {
	Enabled         bool    `mapstructure:"enabled"`
	SecondsPerFrame float64 `mapstructure:"seconds_per_frame"`
	SimulationSpeed float64 `mapstructure:"simulation_speed"`
	Color           bool    `mapstructure:"color"`
}

// SearchConfig holds strategy options.
type SearchConfig struct {
	Seed     int64 `mapstructure:"seed"`
	MaxDepth int   `mapstructure:"max_depth"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr           string        `mapstructure:"addr"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxMazeBytes   int64         `mapstructure:"max_maze_bytes"`
	CORSOrigin     string        `mapstructure:"cors_origin"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mazes.dirs", []string{"mazes"})
	v.SetDefault("animation.enabled", true)
	v.SetDefault("animation.seconds_per_frame", 0.1)
	v.SetDefault("animation.simulation_speed", 10.0)
	v.SetDefault("animation.color", true)
	v.SetDefault("search.seed", 0)
	v.SetDefault("search.max_depth", 10000)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.request_timeout", 10*time.Second)
	v.SetDefault("server.max_maze_bytes", 1<<20)
	v.SetDefault("server.cors_origin", "*")
	v.SetDefault("log.level", "info")
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	// defaults always decode
	_ = v.Unmarshal(&c)
	return c
}

// Load reads configuration from file, falling back to $MAZEFINDER_CONFIG and
// then to mazefinder.{toml,yaml,json} in the working directory. A missing
// default file is not an error; a missing explicit file is.
// The result is validated.
func Load(file string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if file == "" {
		file = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("mazefinder")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Save writes cfg to path; the format follows the file extension.
func Save(cfg Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
	}

	v := viper.New()
	v.Set("mazes.dirs", cfg.Mazes.Dirs)
	v.Set("animation.enabled", cfg.Animation.Enabled)
	v.Set("animation.seconds_per_frame", cfg.Animation.SecondsPerFrame)
	v.Set("animation.simulation_speed", cfg.Animation.SimulationSpeed)
	v.Set("animation.color", cfg.Animation.Color)
	v.Set("search.seed", cfg.Search.Seed)
	v.Set("search.max_depth", cfg.Search.MaxDepth)
	v.Set("server.addr", cfg.Server.Addr)
	v.Set("server.request_timeout", cfg.Server.RequestTimeout.String())
	v.Set("server.max_maze_bytes", cfg.Server.MaxMazeBytes)
	v.Set("server.cors_origin", cfg.Server.CORSOrigin)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case len(c.Mazes.Dirs) == 0:
		return fmt.Errorf("%w: mazes.dirs is empty", ErrInvalid)
	case !positive(c.Animation.SecondsPerFrame):
		return fmt.Errorf("%w: animation.seconds_per_frame must be > 0, got %v", ErrInvalid, c.Animation.SecondsPerFrame)
	case !positive(c.Animation.SimulationSpeed):
		return fmt.Errorf("%w: animation.simulation_speed must be > 0, got %v", ErrInvalid, c.Animation.SimulationSpeed)
	case c.Search.MaxDepth < 0:
		return fmt.Errorf("%w: search.max_depth must be >= 0, got %d", ErrInvalid, c.Search.MaxDepth)
	case strings.TrimSpace(c.Server.Addr) == "":
		return fmt.Errorf("%w: server.addr is empty", ErrInvalid)
	case c.Server.RequestTimeout <= 0:
		return fmt.Errorf("%w: server.request_timeout must be > 0, got %v", ErrInvalid, c.Server.RequestTimeout)
	case c.Server.MaxMazeBytes <= 0:
		return fmt.Errorf("%w: server.max_maze_bytes must be > 0, got %d", ErrInvalid, c.Server.MaxMazeBytes)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}
