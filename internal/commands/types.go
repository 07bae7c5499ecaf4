package commands

import (
	"time"

	"slidelord/internal/audio"
)

// Mode is the command set in effect.
type Mode int

const (
	ModeNormal Mode = iota
	ModeTrack
)

// TrackLoadedMsg reports the end of an asynchronous load.
type TrackLoadedMsg struct {
	Source string
	Track  *audio.Track
	Err    error
}

// LoadStartedMsg precedes the TrackLoadedMsg of the same load.
type LoadStartedMsg struct {
	Source string
}

// PlaybackTickMsg asks the UI to refresh the seek slider. Ticks from an
// older Play carry a stale Gen and are dropped.
type PlaybackTickMsg struct {
	Gen int
}

// VolumeMsg sets the volume slider to Value.
type VolumeMsg struct {
	Value float64
}

// SeekedMsg reports a seek done from the command line.
type SeekedMsg struct {
	Position time.Duration
}

// Slider names accepted by the reverse command.
const (
	SliderSeek   = "seek"
	SliderVolume = "volume"
)

// ReverseMsg toggles the reverse flag of a slider.
type ReverseMsg struct {
	Slider string
}

// ThemeMsg switches the color scheme.
type ThemeMsg struct {
	Name string
}

// ShowFullInfoMsg asks the UI to show the metadata box of the loaded track.
type ShowFullInfoMsg struct{}
