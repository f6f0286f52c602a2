// Package config provides YAML-based configuration loading for the snake
// arcade.
package config

// Config contains all tunable parameters for the game.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Speed     SpeedConfig     `yaml:"speed"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Audio     AudioConfig     `yaml:"audio"`
	Log       LogConfig       `yaml:"log"`
}

// GridConfig defines the playfield dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Margin is the border band of cells excluded from food and obstacle
	// spawns. Movement still uses the full grid.
	Margin int `yaml:"margin"`
}

// SpeedConfig defines the tick-rate band in ticks per second.
type SpeedConfig struct {
	Base int `yaml:"base"` // Baseline rate; runs start at Base/5
	Min  int `yaml:"min"`
	Max  int `yaml:"max"`
}

// Start returns the tick rate a fresh run begins at.
func (s SpeedConfig) Start() int {
	start := s.Base / 5
	if start < s.Min {
		start = s.Min
	}
	return start
}

// ObstaclesConfig defines obstacle spawning.
type ObstaclesConfig struct {
	// PerFood is how many obstacle cells are re-rolled each time food
	// is eaten.
	PerFood int `yaml:"per_food"`
}

// AudioConfig defines audio behavior.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Dir           string  `yaml:"dir"` // Asset directory ("" = ~/.snake/assets)
	MusicVolume   float64 `yaml:"music_volume"`
	EffectsVolume float64 `yaml:"effects_volume"`
}

// LogConfig defines run-event logging.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // Log directory ("" = ~/.snake/logs)
}
