package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep/wav"
)

// Generated asset file names.
const (
	MusicFile    = "music.wav"
	EatFile      = "eat.wav"
	GameOverFile = "game_over.wav"
)

// customMusicBase is the stem of the optional user-supplied music override.
// The first matching extension wins.
var customMusicExts = []string{".mp3", ".ogg", ".wav"}

const customMusicBase = "music_custom"

// Assets holds the resolved on-disk locations of the three audio tracks.
type Assets struct {
	Music       string
	Eat         string
	GameOver    string
	CustomMusic bool // Music points at a user-supplied override
}

// EnsureAssets makes sure the three audio assets exist under dir, generating
// any that are missing. The background music is regenerated on every call so
// synth changes take effect, unless a user override track is present, which
// always takes precedence. Sound effects are only generated when absent.
func EnsureAssets(dir string) (Assets, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Assets{}, fmt.Errorf("audio: cannot create asset directory %s: %w", dir, err)
	}

	a := Assets{
		Music:    filepath.Join(dir, MusicFile),
		Eat:      filepath.Join(dir, EatFile),
		GameOver: filepath.Join(dir, GameOverFile),
	}

	for _, ext := range customMusicExts {
		p := filepath.Join(dir, customMusicBase+ext)
		if _, err := os.Stat(p); err == nil {
			a.Music = p
			a.CustomMusic = true
			break
		}
	}

	if !a.CustomMusic {
		if err := writeWAV(a.Music, Melody()); err != nil {
			return a, err
		}
	}
	if _, err := os.Stat(a.Eat); err != nil {
		if err := writeWAV(a.Eat, EatEffect()); err != nil {
			return a, err
		}
	}
	if _, err := os.Stat(a.GameOver); err != nil {
		if err := writeWAV(a.GameOver, GameOverEffect()); err != nil {
			return a, err
		}
	}

	return a, nil
}

// writeWAV encodes a rendered buffer as a 16-bit PCM WAV file.
func writeWAV(path string, buf Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audio: cannot create %s: %w", path, err)
	}
	if err := wav.Encode(f, Streamer(buf), Format()); err != nil {
		f.Close()
		return fmt.Errorf("audio: cannot encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("audio: cannot close %s: %w", path, err)
	}
	return nil
}
