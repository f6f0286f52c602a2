package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"

	"github.com/CuriAlexity/snake-arcade/internal/config"
)

// fadeDuration is how long the music fades out on death and win.
const fadeDuration = 800 * time.Millisecond

// Player is the boundary between the simulation and sound output. Every
// method is best-effort and safe to call regardless of audio availability;
// failures never reach the game loop.
type Player interface {
	StartMusic()    // (Re)start the looping background track from the top
	PauseMusic()    // Pause the background track
	ResumeMusic()   // Resume a paused background track
	FadeOutMusic()  // Fade the background track to silence
	PlayEat()       // One-shot eat effect
	PlayGameOver()  // One-shot game-over effect
	Close()         // Release the output device
}

// Nop is the silent player, selected when audio is disabled, muted or the
// output device is unavailable.
type Nop struct{}

func (Nop) StartMusic()   {}
func (Nop) PauseMusic()   {}
func (Nop) ResumeMusic()  {}
func (Nop) FadeOutMusic() {}
func (Nop) PlayEat()      {}
func (Nop) PlayGameOver() {}
func (Nop) Close()        {}

// speakerPlayer plays the generated assets through the system speaker via
// beep. The speaker mixer runs on its own goroutine; all shared streamer
// state is mutated under speaker.Lock only.
type speakerPlayer struct {
	sr          beep.SampleRate
	effectsGain float64
	musicGain   float64

	musicSeeker beep.StreamSeekCloser
	musicVol    *effects.Volume
	musicCtrl   *beep.Ctrl

	eat      *beep.Buffer
	gameOver *beep.Buffer

	mu      sync.Mutex
	fadeGen int // Invalidates in-flight fades on StartMusic

	logger *log.Logger
}

// NewSpeakerPlayer initializes the output device and loads the three assets.
// The returned Player owns the speaker until Close.
func NewSpeakerPlayer(a Assets, cfg config.AudioConfig, logger *log.Logger) (Player, error) {
	sr := beep.SampleRate(SampleRate)
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}

	eat, err := loadEffect(a.Eat)
	if err != nil {
		return nil, err
	}
	gameOver, err := loadEffect(a.GameOver)
	if err != nil {
		return nil, err
	}

	seeker, format, err := openMusic(a.Music)
	if err != nil {
		return nil, err
	}
	if a.CustomMusic {
		logger.Debug("audio: using custom music track", "path", a.Music)
	}

	var stream beep.Streamer = beep.Loop(-1, seeker)
	if format.SampleRate != sr {
		stream = beep.Resample(4, format.SampleRate, sr, stream)
	}

	vol := &effects.Volume{
		Streamer: stream,
		Base:     2,
		Volume:   gainToVolume(cfg.MusicVolume),
		Silent:   cfg.MusicVolume <= 0,
	}
	ctrl := &beep.Ctrl{Streamer: vol, Paused: true}
	speaker.Play(ctrl)

	return &speakerPlayer{
		sr:          sr,
		effectsGain: cfg.EffectsVolume,
		musicGain:   cfg.MusicVolume,
		musicSeeker: seeker,
		musicVol:    vol,
		musicCtrl:   ctrl,
		eat:         eat,
		gameOver:    gameOver,
		logger:      logger,
	}, nil
}

// gainToVolume converts a linear gain to the exponential Volume field
// (Base 2).
func gainToVolume(gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return math.Log2(gain)
}

// loadEffect decodes a generated WAV into a replayable memory buffer.
func loadEffect(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	streamer.Close()
	return buf, nil
}

// openMusic decodes the background track by extension. The file stays open
// for streamed looping.
func openMusic(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}

	var (
		s      beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, format, err = mp3.Decode(f)
	case ".ogg":
		s, format, err = vorbis.Decode(f)
	default:
		s, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	return s, format, nil
}

func (p *speakerPlayer) StartMusic() {
	p.mu.Lock()
	p.fadeGen++
	p.mu.Unlock()

	speaker.Lock()
	if err := p.musicSeeker.Seek(0); err != nil {
		p.logger.Debug("audio: music seek failed", "err", err)
	}
	p.musicVol.Volume = gainToVolume(p.musicGain)
	p.musicVol.Silent = p.musicGain <= 0
	p.musicCtrl.Paused = false
	speaker.Unlock()
}

func (p *speakerPlayer) PauseMusic() {
	speaker.Lock()
	p.musicCtrl.Paused = true
	speaker.Unlock()
}

func (p *speakerPlayer) ResumeMusic() {
	speaker.Lock()
	p.musicCtrl.Paused = false
	speaker.Unlock()
}

// FadeOutMusic lowers the music volume in steps over fadeDuration, then
// pauses the track. A StartMusic during the fade cancels it.
func (p *speakerPlayer) FadeOutMusic() {
	p.mu.Lock()
	p.fadeGen++
	gen := p.fadeGen
	p.mu.Unlock()

	go func() {
		const steps = 16
		for i := 0; i < steps; i++ {
			time.Sleep(fadeDuration / steps)

			p.mu.Lock()
			cancelled := gen != p.fadeGen
			p.mu.Unlock()
			if cancelled {
				return
			}

			speaker.Lock()
			p.musicVol.Volume -= 0.5
			speaker.Unlock()
		}

		p.mu.Lock()
		cancelled := gen != p.fadeGen
		p.mu.Unlock()
		if cancelled {
			return
		}

		speaker.Lock()
		p.musicCtrl.Paused = true
		speaker.Unlock()
	}()
}

func (p *speakerPlayer) PlayEat() {
	p.playBuffer(p.eat)
}

func (p *speakerPlayer) PlayGameOver() {
	p.playBuffer(p.gameOver)
}

// playBuffer queues a one-shot effect on the speaker mixer.
func (p *speakerPlayer) playBuffer(buf *beep.Buffer) {
	var shot beep.Streamer = buf.Streamer(0, buf.Len())
	if buf.Format().SampleRate != p.sr {
		shot = beep.Resample(4, buf.Format().SampleRate, p.sr, shot)
	}
	speaker.Play(&effects.Volume{
		Streamer: shot,
		Base:     2,
		Volume:   gainToVolume(p.effectsGain),
		Silent:   p.effectsGain <= 0,
	})
}

func (p *speakerPlayer) Close() {
	speaker.Clear()
	p.musicSeeker.Close()
}
