package utils

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Seed modes understood by the driver
const (
	SeedModeDefault = "default"
	SeedModeRandom  = "random"
	SeedModePattern = "pattern"
)

const envPrefix = "LIFE"

// Config holds the configuration for the game
type Config struct {
	Width               int           `mapstructure:"width"`
	Height              int           `mapstructure:"height"`
	FrameRate           time.Duration `mapstructure:"frame_rate"`
	MaxGenerations      int           `mapstructure:"max_generations"`
	Workers             int           `mapstructure:"workers"`
	SeedMode            string        `mapstructure:"seed_mode"`
	RandomDensity       float64       `mapstructure:"random_density"`
	RandomSeed          int64         `mapstructure:"random_seed"`
	AutoRestart         bool          `mapstructure:"auto_restart"`
	StagnationThreshold int           `mapstructure:"stagnation_threshold"`
	LogLevel            string        `mapstructure:"log_level"`
	LogFile             string        `mapstructure:"log_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               64,
		Height:              32,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		Workers:             0, // runtime.NumCPU()
		SeedMode:            SeedModeDefault,
		RandomDensity:       0.15,
		RandomSeed:          0,
		AutoRestart:         false,
		StagnationThreshold: 5,
		LogLevel:            "info",
		LogFile:             "",
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("frame_rate", d.FrameRate)
	v.SetDefault("max_generations", d.MaxGenerations)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("seed_mode", d.SeedMode)
	v.SetDefault("random_density", d.RandomDensity)
	v.SetDefault("random_seed", d.RandomSeed)
	v.SetDefault("auto_restart", d.AutoRestart)
	v.SetDefault("stagnation_threshold", d.StagnationThreshold)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)
}

// LoadConfig layers defaults, the optional file at filename (json, yaml or toml) and LIFE_* environment variables
func LoadConfig(filename string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if filename != "" {
		v.SetConfigFile(filename)
		if err := v.ReadInConfig(); err != nil {
			return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal config from: %+v", filename)
	}
	if err := config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in: %+v", filename)
	}
	return config, nil
}

// Validate rejects values the engine or driver cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("width and height must be positive, got %dx%d", c.Width, c.Height)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("random_density must be within [0,1], got %v", c.RandomDensity)
	case c.Workers < 0:
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	case c.MaxGenerations < 0:
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	case c.FrameRate < 0:
		return errors.Errorf("frame_rate must not be negative, got %v", c.FrameRate)
	}
	switch c.SeedMode {
	case SeedModeDefault, SeedModeRandom, SeedModePattern:
	default:
		return errors.Errorf("unknown seed_mode %q", c.SeedMode)
	}
	return nil
}
