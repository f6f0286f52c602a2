package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/CuriAlexity/snake-arcade/internal/audio"
	"github.com/CuriAlexity/snake-arcade/internal/config"
	"github.com/CuriAlexity/snake-arcade/internal/core"
	"github.com/CuriAlexity/snake-arcade/internal/eventlog"
	"github.com/CuriAlexity/snake-arcade/internal/game"
	"github.com/CuriAlexity/snake-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal.

Controls:
  Arrows/WASD  - Steer
  Space/Enter  - Start (from the menu)
  Space/P      - Pause
  +/-          - Speed up / slow down
  R            - Restart (after game over or win)
  Q/Esc/Ctrl+C - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Dir)

	// Get terminal size early; the TUI corrects it on the first resize event
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	player := newPlayer(cfg, logger)
	defer player.Close()

	runlog := eventlog.Disabled()
	if cfg.Log.Enabled {
		runlog = eventlog.New(cfg.Log.Dir, logger)
	}

	g := game.New(cfg)

	if runErr := tui.Run(g, player, runlog, rc); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newPlayer builds the audio player, falling back to the silent player when
// audio is disabled or the output device cannot be opened. Audio problems
// never stop the game.
func newPlayer(cfg config.Config, logger *log.Logger) audio.Player {
	if !cfg.Audio.Enabled {
		logger.Debug("audio disabled")
		return audio.Nop{}
	}

	assets, err := audio.EnsureAssets(cfg.Audio.Dir)
	if err != nil {
		logger.Debug("audio asset generation failed", "err", err)
		return audio.Nop{}
	}

	player, err := audio.NewSpeakerPlayer(assets, cfg.Audio, logger)
	if err != nil {
		logger.Debug("audio device unavailable", "err", err)
		return audio.Nop{}
	}
	return player
}
