package ui

import (
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slidelord/internal/audio"
	"slidelord/internal/commands"
	"slidelord/internal/config"
	"slidelord/internal/types"
	"slidelord/pkg/slider"
	"slidelord/pkg/viz"
)

// Slider ids, also used as slider names by the reverse command.
const (
	seekID   = commands.SliderSeek
	volumeID = commands.SliderVolume
)

// Screen layout. Both sliders start at column sliderX; the seek slider's
// first row is seekY, below the title, status and overview rows.
const (
	sliderX          = 2
	seekY            = 3
	defaultSeekLen   = 60
	defaultVolLen    = 9
	inputPrompt      = "> "
	inputPlaceholder = "Enter command (type 'help' for list)"
)

// focus is the widget receiving keys.
type focus int

const (
	focusInput focus = iota
	focusSeek
	focusVolume
)

// ConfigMsg carries a reloaded configuration into the program.
type ConfigMsg struct {
	Config config.Config
}

// Model is the player screen: a seek slider, a volume slider, an output
// pane and the command line.
type Model struct {
	input     textinput.Model
	spinner   spinner.Model
	help      help.Model
	keys      keyMap
	commander *commands.Commander
	log       *slog.Logger

	seek   slider.Model
	volume slider.Model
	focus  focus
	// peaks is the track overview drawn above the seek track.
	peaks []float64

	cfg        config.Config
	styles     slider.Styles
	overview   viz.Scheme
	mainOutput string
	tabOutput  string
	history    []string
	historyPos int
	tabState   *TabState
	exitPrompt bool
	showHelp   bool
	loading    types.LoadingState
	width      int
	height     int
}

// NewModel builds the screen from cfg. The commander drives playback.
func NewModel(cfg config.Config, commander *commands.Commander, logger *slog.Logger) (Model, error) {
	input := textinput.New()
	input.Placeholder = inputPlaceholder
	input.Prompt = inputPrompt
	input.Focus()
	input.CharLimit = 256
	input.Width = 80

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := Model{
		input:      input,
		spinner:    s,
		help:       help.New(),
		keys:       defaultKeyMap(),
		commander:  commander,
		log:        logger,
		historyPos: -1,
		mainOutput: "Welcome to slidelord! Type 'help' for commands.\nPress '?' to show keyboard shortcuts.",
	}

	seekCfg, err := m.seekConfig(cfg, 0)
	if err != nil {
		return Model{}, err
	}
	if m.seek, err = slider.NewModel(seekID, seekCfg, cfg.Seek.SliderLength(defaultSeekLen), logger); err != nil {
		return Model{}, err
	}

	volCfg, err := cfg.Volume.SliderConfig(0, 100)
	if err != nil {
		return Model{}, err
	}
	if m.volume, err = slider.NewModel(volumeID, volCfg, cfg.Volume.SliderLength(defaultVolLen), logger); err != nil {
		return Model{}, err
	}

	m.cfg = cfg
	m.applyTheme(cfg.Theme)
	m.setVolume(cfg.InitialVolume)
	m.relayout()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.seek.Init(), m.volume.Init())
}

// seekConfig spans the current track, at least one second.
func (m Model) seekConfig(cfg config.Config, d time.Duration) (slider.Config, error) {
	sc, err := cfg.Seek.SliderConfig(0, max(d.Seconds(), 1))
	if err != nil {
		return sc, err
	}
	sc.Format = func(v float64) string {
		return audio.FormatDuration(time.Duration(v * float64(time.Second)))
	}
	if len(cfg.Seek.Labels) == 0 {
		// generated ticks read as positions
		for v := range sc.Labels {
			sc.Labels[v] = sc.Format(v)
		}
	}
	return sc, nil
}

// setVolume clamps v to the volume slider, mirrors it and applies the gain.
func (m *Model) setVolume(v float64) {
	vc := m.volume.Config()
	v = vc.Clamp(v)
	m.volume.SetValue(v)
	m.commander.Player().SetVolume(audio.GainFor(v, vc.Min, vc.Max))
}

func (m *Model) applyTheme(name string) {
	cs, ok := slider.ColorSchemes[name]
	if !ok {
		cs = slider.DefaultColorScheme()
	}
	m.overview = viz.Scheme{Dim: cs.Track, Bright: cs.Highlight, Pending: cs.Track}
	m.styles = slider.NewStyles(cs)
	m.seek.SetStyles(m.styles)
	m.volume.SetStyles(m.styles)
}

// relayout tells both sliders where they are drawn. The seek slider sits
// below the overview row; the volume slider one row below it.
func (m *Model) relayout() {
	seekLen := m.cfg.Seek.SliderLength(defaultSeekLen)
	if m.width > 0 {
		seekLen = max(min(seekLen, m.width-2*sliderX), 10)
	}
	if seekLen != m.seek.Length() {
		m.seek.SetLength(seekLen)
	}
	m.seek.SetOrigin(sliderX, seekY)
	if t := m.commander.CurrentTrack(); t == nil {
		m.peaks = nil
	} else if len(m.peaks) != seekLen {
		m.peaks = t.Peaks(seekLen)
	}
	_, h := m.seek.Size()
	m.volume.SetOrigin(sliderX, seekY+h+1)
}

// applyConfig installs a reloaded configuration, keeping the current values.
func (m *Model) applyConfig(cfg config.Config) error {
	var d time.Duration
	if t := m.commander.CurrentTrack(); t != nil {
		d = t.Duration
	}
	seekCfg, err := m.seekConfig(cfg, d)
	if err != nil {
		return err
	}
	volCfg, err := cfg.Volume.SliderConfig(0, 100)
	if err != nil {
		return err
	}
	if err := errors.Join(seekCfg.Validate(), volCfg.Validate()); err != nil {
		return err
	}
	prevSeek := m.seek.Config()
	if err := m.seek.SetConfig(seekCfg); err != nil {
		return err
	}
	if err := m.volume.SetConfig(volCfg); err != nil {
		// nothing of a rejected reload stays applied
		_ = m.seek.SetConfig(prevSeek)
		return err
	}
	m.cfg = cfg
	m.volume.SetLength(cfg.Volume.SliderLength(defaultVolLen))
	m.applyTheme(cfg.Theme)
	m.setVolume(m.volume.Value())
	m.seek.SetValue(seekCfg.Clamp(m.seek.Value()))
	m.relayout()
	return nil
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	m.seek.Blur()
	m.volume.Blur()
	m.input.Blur()
	switch f {
	case focusSeek:
		m.seek.Focus()
	case focusVolume:
		m.volume.Focus()
	default:
		m.input.Focus()
	}
}

// Close releases slider listeners and the audio device.
func (m Model) Close() error {
	m.seek.Close()
	m.volume.Close()
	return m.commander.Player().Close()
}
