// Package config provides YAML-based host settings for Flappy Dragon.
// Game rules are compiled constants; this only covers how the game is
// driven: frame rate, key aliases, the SSH listener and logging.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all host settings.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Seed     int64          `yaml:"seed"`
	Controls ControlsConfig `yaml:"controls"`
	SSH      SSHConfig      `yaml:"ssh"`
	Log      LogConfig      `yaml:"log"`
}

// DisplayConfig defines frame pacing and window scaling.
type DisplayConfig struct {
	FPS   int `yaml:"fps"`
	Scale int `yaml:"scale"`
}

// ControlsConfig lists the key names bound to each action.
// Names follow Bubble Tea's key strings ("space", "up", "p").
type ControlsConfig struct {
	Flap []string `yaml:"flap"`
	Play []string `yaml:"play"`
	Quit []string `yaml:"quit"`
}

// SSHConfig defines the SSH listener used by `dragon serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logger verbosity and destination.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate reports the first setting a host could not run with.
func (c Config) Validate() error {
	if c.Display.FPS <= 0 {
		return fmt.Errorf("config: display.fps must be positive, got %d", c.Display.FPS)
	}
	if c.Display.Scale <= 0 {
		return fmt.Errorf("config: display.scale must be positive, got %d", c.Display.Scale)
	}
	if len(c.Controls.Flap) == 0 || len(c.Controls.Play) == 0 || len(c.Controls.Quit) == 0 {
		return errors.New("config: every control needs at least one key")
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: ssh.idle_timeout must not be negative, got %s", c.SSH.IdleTimeout)
	}
	return nil
}
