package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config holds the game tunables. Zero values are filled in from defaults
// after unmarshal, so a partial yaml file only overrides what it names.
type Config struct {
	ScreenWidth  int     `yaml:"screen_width"`
	ScreenHeight int     `yaml:"screen_height"`
	Zoom         float64 `yaml:"zoom"`
	Level        string  `yaml:"level"`

	Player PlayerConfig `yaml:"player"`
}

type PlayerConfig struct {
	Speed        float64 `yaml:"speed"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	FrameCount   int     `yaml:"frame_count"`
	FrameAdvance float64 `yaml:"frame_advance"`
	HitboxPadX   float64 `yaml:"hitbox_pad_x"`
	FeetHeight   float64 `yaml:"feet_height"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 600,
		Zoom:         2,
		Level:        "town",
		Player: PlayerConfig{
			Speed:        4,
			Width:        32,
			Height:       32,
			FrameCount:   4,
			FrameAdvance: 0.15,
			HitboxPadX:   8,
			FeetHeight:   12,
		},
	}
}

// Parse unmarshals yaml over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config, preferring an on-disk override over the embedded
// default.
func Load() (Config, error) {
	data, err := read("config.yaml")
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}
	return Parse(data)
}

func (c Config) validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("config: invalid screen size %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.Zoom <= 0 {
		return fmt.Errorf("config: zoom must be positive, got %v", c.Zoom)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("config: player speed must be positive, got %v", c.Player.Speed)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: invalid player size %vx%v", c.Player.Width, c.Player.Height)
	}
	if c.Player.FrameCount < 1 {
		return fmt.Errorf("config: frame count must be at least 1, got %d", c.Player.FrameCount)
	}
	if c.Player.HitboxPadX*2 >= c.Player.Width {
		return fmt.Errorf("config: hitbox padding %v leaves no width on a %v-wide player", c.Player.HitboxPadX, c.Player.Width)
	}
	if c.Player.FeetHeight <= 0 || c.Player.FeetHeight > c.Player.Height {
		return fmt.Errorf("config: feet height %v outside player height %v", c.Player.FeetHeight, c.Player.Height)
	}
	if c.Level == "" {
		return fmt.Errorf("config: level name is empty")
	}
	return nil
}
