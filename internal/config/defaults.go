package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  30,
			Height: 20,
			Margin: 1,
		},
		Speed: SpeedConfig{
			Base: 12,
			Min:  2,
			Max:  24,
		},
		Obstacles: ObstaclesConfig{
			PerFood: 3,
		},
		Audio: AudioConfig{
			Enabled:       true,
			MusicVolume:   0.15,
			EffectsVolume: 0.45,
		},
		Log: LogConfig{
			Enabled: true,
		},
	}
}
