package audio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/hajimehoshi/oto"
)

// ErrNoTrack is returned by operations that need a loaded track.
var ErrNoTrack = errors.New("no track loaded")

// PlaybackState enumerates whether the track is playing, paused, or stopped.
type PlaybackState int

const (
	StateStopped PlaybackState = iota
	StatePlaying
	StatePaused
)

func (s PlaybackState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Stopped"
	}
}

const (
	outputBufferSize = 8192
	chunkSize        = 4096
)

type sink interface {
	io.Writer
	io.Closer
}

type output interface {
	NewPlayer() sink
	Close() error
}

type outputFactory func(sampleRate, channels int) (output, error)

type otoOutput struct{ ctx *oto.Context }

func (o otoOutput) NewPlayer() sink { return o.ctx.NewPlayer() }
func (o otoOutput) Close() error    { return o.ctx.Close() }

func openOto(sampleRate, channels int) (output, error) {
	ctx, err := oto.NewContext(sampleRate, channels, bytesPerSample, outputBufferSize)
	if err != nil {
		return nil, fmt.Errorf("create audio context: %w", err)
	}
	return otoOutput{ctx}, nil
}

// Player streams a decoded Track to the audio device. The stream reads the
// current gain and position on every chunk, so SetVolume and Seek take
// effect while playing.
type Player struct {
	mu      sync.Mutex
	open    outputFactory
	out     output
	outRate int

	track  *Track
	state  PlaybackState
	offset int
	gain   float64

	stop chan struct{}
	done chan struct{}

	log *slog.Logger
}

// NewPlayer creates a stopped Player at full gain.
func NewPlayer(logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Player{open: openOto, gain: 1, log: logger}
}

// Load stops playback and replaces the current track.
func (p *Player) Load(t *Track) {
	p.halt()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.track = t
	p.offset = 0
	p.state = StateStopped
}

// Track returns the loaded track, or nil.
func (p *Player) Track() *Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.track
}

// Play starts or resumes playback. It is a no-op while playing.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.track == nil {
		return ErrNoTrack
	}
	if p.state == StatePlaying {
		return nil
	}

	if p.out != nil && p.outRate != p.track.SampleRate {
		if err := p.out.Close(); err != nil {
			p.log.Warn("close audio output", "err", err)
		}
		p.out = nil
	}
	if p.out == nil {
		out, err := p.open(p.track.SampleRate, channels)
		if err != nil {
			return err
		}
		p.out, p.outRate = out, p.track.SampleRate
	}

	if p.offset >= len(p.track.PCM) {
		p.offset = 0
	}
	p.state = StatePlaying
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	go p.stream(p.out.NewPlayer(), p.track, p.stop, p.done)
	p.log.Debug("playback started", "offset", p.offset)
	return nil
}

func (p *Player) stream(s sink, t *Track, stop, done chan struct{}) {
	defer close(done)
	defer s.Close()

	buf := make([]byte, chunkSize)
	for {
		select {
		case <-stop:
			return
		default:
		}

		p.mu.Lock()
		if p.track != t || p.offset >= len(t.PCM) {
			if p.track == t {
				p.state = StateStopped
			}
			p.mu.Unlock()
			return
		}
		n := copy(buf, t.PCM[p.offset:])
		p.offset += n
		gain := p.gain
		p.mu.Unlock()

		applyGain(buf[:n], gain)
		if _, err := s.Write(buf[:n]); err != nil {
			p.log.Error("audio write failed", "err", err)
			p.mu.Lock()
			p.state = StateStopped
			p.mu.Unlock()
			return
		}
	}
}

// halt stops the stream goroutine and waits for it. Callers must not hold mu.
func (p *Player) halt() {
	p.mu.Lock()
	stop, done := p.stop, p.done
	p.stop, p.done = nil, nil
	p.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}

// Pause halts playback but retains the position.
func (p *Player) Pause() error {
	p.mu.Lock()
	playing := p.state == StatePlaying
	p.mu.Unlock()
	if !playing {
		return nil
	}

	p.halt()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StatePlaying {
		p.state = StatePaused
	}
	return nil
}

// Stop halts playback and rewinds.
func (p *Player) Stop() error {
	p.halt()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = StateStopped
	p.offset = 0
	return nil
}

// Seek moves the position, clamped to the track. Playback continues from the
// new position if it was running.
func (p *Player) Seek(d time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.track == nil {
		return ErrNoTrack
	}
	p.offset = p.track.offsetOf(d)
	return nil
}

// Position is the position of the next chunk to be written.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.track == nil {
		return 0
	}
	return p.track.durationOf(p.offset)
}

// Duration of the loaded track, or zero.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.track == nil {
		return 0
	}
	return p.track.Duration
}

// State returns whether the player is playing, paused, or stopped.
func (p *Player) State() PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SetVolume sets the linear gain, clamped to [0, 1].
func (p *Player) SetVolume(gain float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gain = min(max(gain, 0), 1)
}

// Volume returns the linear gain.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gain
}

// Close stops playback and releases the audio device.
func (p *Player) Close() error {
	p.halt()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = StateStopped
	if p.out == nil {
		return nil
	}
	err := p.out.Close()
	p.out = nil
	return err
}
