package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultSize      = 50
	DefaultSpeed     = 100
	DefaultFPS       = 30
	DefaultTheme     = "classic"
	DefaultLogLevel  = "info"

	MinSize  = 5
	MaxSize  = 200
	MinSpeed = 10
	MaxSpeed = 200
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Algorithm string    `yaml:"algorithm"`
	Size      int       `yaml:"size"`
	Speed     int       `yaml:"speed"`
	Seed      int64     `yaml:"seed"`
	FPS       int       `yaml:"fps"`
	Theme     string    `yaml:"theme"`
	Instant   bool      `yaml:"instant"`
	Log       LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Size:      DefaultSize,
		Speed:     DefaultSpeed,
		FPS:       DefaultFPS,
		Theme:     DefaultTheme,
		Log: LogConfig{
			Level: DefaultLogLevel,
			Dir:   ".sortviz/logs",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Size < MinSize || c.Size > MaxSize {
		return fmt.Errorf("%w: size %d outside [%d, %d]", ErrInvalid, c.Size, MinSize, MaxSize)
	}
	if c.Speed < MinSpeed || c.Speed > MaxSpeed {
		return fmt.Errorf("%w: speed %d outside [%d, %d]", ErrInvalid, c.Speed, MinSpeed, MaxSpeed)
	}
	if c.FPS < 0 {
		return fmt.Errorf("%w: fps must not be negative, got %d", ErrInvalid, c.FPS)
	}
	return nil
}

// Delay is the per-step delay for the configured speed. Instant runs use zero.
func (c *Config) Delay() time.Duration {
	if c.Instant {
		return 0
	}
	return DelayFor(c.Speed)
}

// DelayFor maps a speed slider value in [MinSpeed, MaxSpeed] to a per-step
// delay: higher speed, shorter delay.
func DelayFor(speed int) time.Duration {
	speed = ClampSpeed(speed)
	return time.Duration(210-speed) * time.Millisecond
}

func ClampSpeed(speed int) int {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}

func ClampSize(size int) int {
	if size < MinSize {
		return MinSize
	}
	if size > MaxSize {
		return MaxSize
	}
	return size
}

// SpeedLabel describes a speed value the way the speed control shows it.
func SpeedLabel(speed int) string {
	switch {
	case speed < 70:
		return "Slow"
	case speed < 130:
		return "Medium"
	default:
		return "Fast"
	}
}
