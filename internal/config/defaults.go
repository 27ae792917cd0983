package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dragon.yaml
var defaultYAML []byte

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			FPS:   60,
			Scale: 2,
		},
		Seed: 0,
		Controls: ControlsConfig{
			Flap: []string{" ", "space", "up", "w"},
			Play: []string{"p"},
			Quit: []string{"q"},
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultYAML
}
