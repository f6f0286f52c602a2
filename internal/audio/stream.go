package audio

import (
	"github.com/gopxl/beep"
)

// Format is the PCM format of all generated assets: mono 16-bit at 22050 Hz.
func Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(SampleRate),
		NumChannels: 1,
		Precision:   2,
	}
}

// bufferStreamer adapts a mono Buffer to a beep.Streamer, duplicating the
// sample into both channels.
type bufferStreamer struct {
	buf Buffer
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error { return nil }

// Streamer wraps a rendered buffer as a one-shot beep.Streamer.
func Streamer(buf Buffer) beep.Streamer {
	return &bufferStreamer{buf: buf}
}
