package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/CuriAlexity/snake-arcade/internal/audio"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Generate the audio assets and exit",
	Long: `Synthesize the background music and sound effects into the asset
directory without starting the game.

The background track is regenerated on every run unless a custom track
(music_custom.mp3, music_custom.ogg or music_custom.wav) is present in the
directory. Effect files are only written when absent.

Examples:
  snake assets
  snake assets --assets-dir ./sounds`,
	Args: cobra.NoArgs,
	Run:  runAssets,
}

func runAssets(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	assets, err := audio.EnsureAssets(cfg.Audio.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating assets: %v\n", err)
		os.Exit(1)
	}

	if assets.CustomMusic {
		fmt.Printf("Using custom music: %s\n", assets.Music)
	} else {
		fmt.Printf("Wrote %s\n", assets.Music)
	}
	fmt.Printf("Effects in %s\n", filepath.Dir(assets.Eat))
}
