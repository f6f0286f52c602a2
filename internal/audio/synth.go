// Package audio provides the procedural chiptune synthesizer, the on-disk
// asset cache and best-effort playback for the snake arcade. Synthesis is
// pure and deterministic: closed-form waveform math over mono float buffers,
// rendered once and persisted as 16-bit PCM WAV files.
package audio

import (
	"math"
)

// SampleRate is the fixed rate of all generated audio, in Hz.
const SampleRate = 22050

// Envelope applied to every tone to avoid clicks.
const (
	attackSec  = 0.02
	releaseSec = 0.15
)

// Buffer is mono float64 samples in [-1, 1].
type Buffer []float64

// Duration returns the buffer length in seconds.
func (b Buffer) Duration() float64 {
	return float64(len(b)) / SampleRate
}

// triangleLike approximates a triangle wave by summing the first four odd
// harmonics of a sine series, scaled 8/pi^2 and tamed to 0.7 headroom.
func triangleLike(t, freq float64) float64 {
	w := 2 * math.Pi * freq
	return (8 / (math.Pi * math.Pi)) * (math.Sin(w*t) -
		math.Sin(3*w*t)/9 +
		math.Sin(5*w*t)/25 -
		math.Sin(7*w*t)/49) * 0.7
}

// Tone renders a single triangle-like tone with a linear attack and release.
func Tone(freq, durationSec, volume float64) Buffer {
	total := int(durationSec * SampleRate)
	attack := int(attackSec * SampleRate)
	release := int(releaseSec * SampleRate)

	buf := make(Buffer, total)
	for i := range buf {
		t := float64(i) / SampleRate
		amp := 1.0
		if i < attack {
			amp = float64(i) / math.Max(1, float64(attack))
		} else if i > total-release {
			amp = float64(total-i) / math.Max(1, float64(release))
		}
		buf[i] = triangleLike(t, freq) * volume * amp
	}
	return buf
}

// rest renders silence.
func rest(durationSec float64) Buffer {
	return make(Buffer, int(durationSec*SampleRate))
}

// note is one melody step: a frequency (0 = rest) and a duration.
type note struct {
	freq float64
	dur  float64
}

// Note frequencies, fourth and fifth octave.
const (
	noteC4 = 261.63
	noteD4 = 293.66
	noteE4 = 329.63
	noteF4 = 349.23
	noteG4 = 392.00
	noteA4 = 440.00
	noteB4 = 493.88
	noteC5 = 523.25
)

// melodyBars returns the four-bar groove at ~61.9 BPM.
func melodyBars() []note {
	beat := 60.0 / 61.9
	q := beat * 0.45
	e := beat * 0.25
	s := beat * 0.16
	r := beat * 0.12

	return []note{
		// Bar 1: C E G C5 with pickups
		{noteC4, e}, {noteE4, e}, {0, r}, {noteG4, e}, {0, r / 2}, {noteC5, q}, {0, r}, {noteE4, s}, {noteG4, s},
		// Bar 2: walk down with bounce
		{noteA4, e}, {0, r / 2}, {noteG4, e}, {0, r / 2}, {noteE4, e}, {noteD4, s}, {noteE4, s}, {noteF4, e}, {noteG4, q},
		// Bar 3: bright lift
		{noteE4, e}, {noteG4, e}, {0, r / 2}, {noteC5, e}, {noteB4, s}, {noteA4, s}, {noteG4, e}, {0, r / 2}, {noteE4, e},
		// Bar 4: cadence
		{noteF4, e}, {noteE4, e}, {noteD4, e}, {noteC4, q}, {0, r},
	}
}

// Melody renders the background track: the four-bar sequence played twice.
func Melody() Buffer {
	bars := melodyBars()

	var data Buffer
	for range 2 {
		for _, n := range bars {
			if n.freq == 0 {
				data = append(data, rest(n.dur)...)
			} else {
				data = append(data, Tone(n.freq, n.dur, 0.18)...)
			}
		}
	}
	return data
}

// EatEffect renders four quick ascending tones.
func EatEffect() Buffer {
	var data Buffer
	for _, freq := range []float64{520, 640, 760, 900} {
		data = append(data, Tone(freq, 0.06, 0.18)...)
	}
	return data
}

// GameOverEffect renders four slow descending tones.
func GameOverEffect() Buffer {
	var data Buffer
	for _, freq := range []float64{660, 520, 390, 260} {
		data = append(data, Tone(freq, 0.16, 0.16)...)
	}
	return data
}
