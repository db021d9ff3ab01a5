// Package config loads game tuning and host settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration document.
type Config struct {
	Physics Physics `yaml:"physics"`
	Camera  Camera  `yaml:"camera"`
	Loop    Loop    `yaml:"loop"`
	Server  Server  `yaml:"server"`
}

// Physics tunes entity movement. Speeds are in tiles/second.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	CaptainSpeed float64 `yaml:"captain_speed"`
	CrabbySpeed  float64 `yaml:"crabby_speed"`
	RunThreshold float64 `yaml:"run_threshold"`
}

// Camera sizes the viewport and tunes the follow controller.
type Camera struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Bound        float64 `yaml:"bound"`
	CatchUpSpeed float64 `yaml:"catch_up_speed"`
}

// Loop controls the host frame clock.
type Loop struct {
	TickHz int     `yaml:"tick_hz"`
	MaxDt  float64 `yaml:"max_dt"`
	// KeyHold is how long a terminal key stays down after its last press
	// event, in seconds.
	KeyHold float64 `yaml:"key_hold"`
}

// Server configures the SSH host.
type Server struct {
	Port        int    `yaml:"port"`
	HostKey     string `yaml:"host_key"`
	MaxSessions int    `yaml:"max_sessions"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns the built-in tuning.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:      2,
			CaptainSpeed: 4,
			CrabbySpeed:  2,
			RunThreshold: 0.05,
		},
		Camera: Camera{
			Width:        20,
			Height:       12,
			Bound:        2,
			CatchUpSpeed: 4,
		},
		Loop: Loop{
			TickHz:  60,
			MaxDt:   0.1,
			KeyHold: 0.15,
		},
		Server: Server{
			Port:        2222,
			HostKey:     "server_host_key",
			MaxSessions: 16,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path falls back to the
// GAME_CONFIG environment variable; with neither set the defaults are
// returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("GAME_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Physics.CaptainSpeed <= 0 {
		errs = append(errs, errors.New("physics.captain_speed must be positive"))
	}
	if c.Physics.CrabbySpeed < 0 {
		errs = append(errs, errors.New("physics.crabby_speed must not be negative"))
	}
	if c.Camera.Width <= 0 || c.Camera.Height <= 0 {
		errs = append(errs, errors.New("camera width and height must be positive"))
	}
	if c.Camera.CatchUpSpeed <= 0 {
		errs = append(errs, errors.New("camera.catch_up_speed must be positive"))
	}
	if c.Loop.TickHz <= 0 {
		errs = append(errs, errors.New("loop.tick_hz must be positive"))
	}
	if c.Loop.MaxDt <= 0 {
		errs = append(errs, errors.New("loop.max_dt must be positive"))
	}
	return errors.Join(errs...)
}
