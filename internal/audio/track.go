package audio

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/hajimehoshi/go-mp3"
)

// go-mp3 always produces interleaved 16-bit stereo.
const (
	channels       = 2
	bytesPerSample = 2
	bytesPerFrame  = channels * bytesPerSample
)

// Track is a fully decoded song ready for playback.
type Track struct {
	Name       string
	PCM        []byte
	SampleRate int
	Duration   time.Duration
	Meta       *Metadata
}

// Decode reads an mp3 stream into PCM.
func Decode(r io.Reader) (*Track, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}

	var pcm bytes.Buffer
	if n := dec.Length(); n > 0 {
		pcm.Grow(int(n))
	}
	if _, err := io.Copy(&pcm, dec); err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}

	t := &Track{PCM: pcm.Bytes(), SampleRate: dec.SampleRate()}
	t.Duration = t.durationOf(len(t.PCM))
	return t, nil
}

func (t *Track) durationOf(offset int) time.Duration {
	if t.SampleRate <= 0 {
		return 0
	}
	frames := offset / bytesPerFrame
	return time.Duration(frames) * time.Second / time.Duration(t.SampleRate)
}

// offsetOf is the frame-aligned byte offset of d, clamped to the track.
func (t *Track) offsetOf(d time.Duration) int {
	if d <= 0 || t.SampleRate <= 0 {
		return 0
	}
	frames := int(d * time.Duration(t.SampleRate) / time.Second)
	off := frames * bytesPerFrame
	end := len(t.PCM) - len(t.PCM)%bytesPerFrame
	return min(off, end)
}
