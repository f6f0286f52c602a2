// snake is a terminal arcade snake game with procedural chiptune audio.
//
// Usage:
//
//	snake            - Play (same as 'snake play')
//	snake play       - Play the game
//	snake assets     - Generate the audio assets and exit
//	snake runs       - Show past run records from the event log
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--seed <value>       - RNG seed for reproducible runs (0 = time-based)
//	--assets-dir <path>  - Override the audio asset directory
//	--log-dir <path>     - Override the run-log directory
//	--mute               - Disable audio output
//	--debug              - Write debug logs to a file under the log directory
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/CuriAlexity/snake-arcade/internal/config"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int64
	flagAssetsDir string
	flagLogDir    string
	flagMute      bool
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a terminal arcade game with chiptune audio",
	Long: `Snake is a terminal arcade game: steer the snake with arrows or WASD,
eat food to grow, and dodge the obstacles that appear as you score.
The background music and sound effects are synthesized on first launch.

Available commands:
  play     - Play the game (default when no command is given)
  assets   - Generate the audio assets and exit
  runs     - View past run records

Examples:
  snake
  snake play --seed 42
  snake play --mute --config ./my-snake.yaml
  snake assets --assets-dir ./sounds
  snake runs --interactive`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagAssetsDir, "assets-dir", "", "Audio asset directory (default ~/.snake/assets)")
	rootCmd.PersistentFlags().StringVar(&flagLogDir, "log-dir", "", "Run-log directory (default ~/.snake/logs)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio output")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to a file under the log directory")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(runsCmd)
}

// loadConfig loads the YAML config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagAssetsDir != "" {
		cfg.Audio.Dir = flagAssetsDir
	}
	if flagLogDir != "" {
		cfg.Log.Dir = flagLogDir
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	if cfg.Audio.Dir == "" {
		cfg.Audio.Dir = config.UserDir("assets")
	}
	if cfg.Log.Dir == "" {
		cfg.Log.Dir = config.UserDir("logs")
	}

	return cfg, nil
}

// newLogger builds the debug logger. The TUI owns the terminal, so logs
// never go to stderr: with --debug they go to debug.log under the log
// directory, otherwise they are discarded.
func newLogger(logDir string) *log.Logger {
	if !flagDebug {
		return log.New(io.Discard)
	}

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(logDir, 0o755)
	f, err := os.OpenFile(filepath.Join(logDir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}

	logger := log.New(f)
	logger.SetLevel(log.DebugLevel)
	return logger
}
