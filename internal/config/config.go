// Package config loads the slider layout of the player from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"slidelord/pkg/slider"
)

// SliderSpec is the YAML form of one slider.
type SliderSpec struct {
	Min         *float64           `yaml:"min,omitempty"`
	Max         *float64           `yaml:"max,omitempty"`
	Step        float64            `yaml:"step,omitempty"`
	Orientation string             `yaml:"orientation,omitempty"`
	Reverse     bool               `yaml:"reverse,omitempty"`
	Tooltip     *bool              `yaml:"tooltip,omitempty"`
	Length      int                `yaml:"length,omitempty"`
	HandleLabel string             `yaml:"handle_label,omitempty"`
	Labels      map[float64]string `yaml:"labels,omitempty"`
	// Ticks generates evenly spaced labels when Labels is empty.
	Ticks int `yaml:"ticks,omitempty"`
}

// Config is the player configuration.
type Config struct {
	Theme  string     `yaml:"theme"`
	Seek   SliderSpec `yaml:"seek"`
	Volume SliderSpec `yaml:"volume"`
	// InitialVolume is in the volume slider's units.
	InitialVolume float64 `yaml:"initial_volume"`
}

func ptr[T any](v T) *T { return &v }

// Default is the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme: "default",
		Seek: SliderSpec{
			Step:   1,
			Length: 60,
		},
		Volume: SliderSpec{
			Min:         ptr(0.0),
			Max:         ptr(100.0),
			Step:        1,
			Orientation: "vertical",
			Length:      9,
			Labels:      map[float64]string{0: "0", 50: "50", 100: "100"},
		},
		InitialVolume: 70,
	}
}

// DefaultPath is ~/.slidelord/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".slidelord", "config.yaml"), nil
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	// yaml.v3 merges into existing maps, so labels start empty and the
	// defaults only come back when the file sets neither labels nor ticks.
	def := cfg
	cfg.Seek.Labels, cfg.Volume.Labels = nil, nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Seek.keepDefaultLabels(def.Seek)
	cfg.Volume.keepDefaultLabels(def.Volume)
	if _, err := cfg.Seek.SliderConfig(0, 1); err != nil {
		return Default(), fmt.Errorf("seek slider: %w", err)
	}
	if _, err := cfg.Volume.SliderConfig(0, 100); err != nil {
		return Default(), fmt.Errorf("volume slider: %w", err)
	}
	return cfg, nil
}

// SliderConfig builds a slider.Config, filling unset bounds from min and max.
func (s SliderSpec) SliderConfig(min, max float64) (slider.Config, error) {
	cfg := slider.DefaultConfig()
	cfg.Min, cfg.Max = min, max
	if s.Min != nil {
		cfg.Min = *s.Min
	}
	if s.Max != nil {
		cfg.Max = *s.Max
	}
	if s.Step != 0 {
		cfg.Step = s.Step
	}
	o, err := slider.ParseOrientation(s.Orientation)
	if err != nil {
		return cfg, err
	}
	cfg.Orientation = o
	cfg.Reverse = s.Reverse
	if s.Tooltip != nil {
		cfg.Tooltip = *s.Tooltip
	}
	cfg.HandleLabel = s.HandleLabel
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	switch {
	case len(s.Labels) > 0:
		cfg.Labels = s.Labels
	case s.Ticks > 0:
		cfg.Labels = slider.Ticks(cfg, s.Ticks)
	}
	return cfg, nil
}

func (s *SliderSpec) keepDefaultLabels(def SliderSpec) {
	if s.Labels == nil && s.Ticks == 0 {
		s.Labels = def.Labels
	}
}

// SliderLength is the configured track length, or fallback.
func (s SliderSpec) SliderLength(fallback int) int {
	if s.Length > 0 {
		return s.Length
	}
	return fallback
}
