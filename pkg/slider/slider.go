package slider

import (
	"io"
	"log/slog"
)

// Callbacks are the outbound notifications of a slider. All of them are
// optional.
type Callbacks struct {
	OnChangeStart    func(ev *PointerEvent)
	OnChange         func(value float64, ev Event)
	OnChangeComplete func(ev *PointerEvent)
	// GetLastValue receives the caller's current value once per completed
	// gesture.
	GetLastValue func(value float64)
}

// Slider is a controlled range input. It never owns the value: the caller
// mirrors its current value with SetValue and receives changes through
// Callbacks.
type Slider struct {
	cfg      Config
	cb       Callbacks
	document EventTarget
	observer Observer
	log      *slog.Logger

	value float64

	// interaction state
	active  bool
	pending bool
	limit   float64
	grab    float64

	track  Element
	handle Element
	drag   dragListeners
}

// Option configures a Slider.
type Option func(*Slider)

func WithCallbacks(cb Callbacks) Option {
	return func(s *Slider) { s.cb = cb }
}

// WithDocument sets the target drag listeners are attached to while a
// gesture is in progress.
func WithDocument(t EventTarget) Option {
	return func(s *Slider) { s.document = t }
}

func WithObserver(o Observer) Option {
	return func(s *Slider) { s.observer = o }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Slider) { s.log = l }
}

// New validates cfg and returns an unmounted slider.
func New(cfg Config, opts ...Option) (*Slider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Slider{cfg: cfg, value: cfg.Min}
	for _, opt := range opts {
		opt(s)
	}
	if s.document == nil {
		s.document = NewDocument()
	}
	if s.observer == nil {
		s.observer = NewResizeObserver()
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s, nil
}

// Mount measures track and handle and starts observing the track.
func (s *Slider) Mount(track, handle Element) {
	s.track = track
	s.handle = handle
	s.Measure()
	s.observer.Observe(track, s.Measure)
}

// Close detaches any drag listeners and stops observing. It is safe to call
// more than once.
func (s *Slider) Close() {
	s.drag.detach()
	s.observer.Disconnect()
	s.active = false
	s.pending = false
}

// Measure recomputes limit and grab from the mounted elements. Elements
// that are not laid out yet leave the previous values in place.
func (s *Slider) Measure() {
	m, ok := measure(s.cfg.Orientation, s.track, s.handle)
	if !ok {
		return
	}
	if m.limit != s.limit || m.grab != s.grab {
		s.log.Debug("slider measured", "limit", m.limit, "grab", m.grab)
	}
	s.limit = m.limit
	s.grab = m.grab
}

func (s *Slider) Config() Config { return s.cfg }

// SetConfig replaces the configuration, re-measuring because the
// orientation picks the measured dimension.
func (s *Slider) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	s.Measure()
	return nil
}

// SetValue mirrors the caller's current value.
func (s *Slider) SetValue(v float64) { s.value = v }

func (s *Slider) Value() float64 { return s.value }

// Active reports whether a drag gesture is in progress.
func (s *Slider) Active() bool { return s.active }

func (s *Slider) Limit() float64 { return s.limit }
func (s *Slider) Grab() float64  { return s.grab }

// Geometry returns the transforms for the current measurement.
func (s *Slider) Geometry() Geometry {
	return NewGeometry(s.cfg, s.limit, s.grab)
}

func (s *Slider) trackBounds() Rect {
	if s.track == nil {
		return Rect{}
	}
	return s.track.Bounds()
}

// Aria mirrors the accessibility attributes of the track.
type Aria struct {
	ValueMin    float64
	ValueMax    float64
	ValueNow    float64
	Orientation Orientation
}

// LabelItem is a label marker positioned along the track.
type LabelItem struct {
	Value  float64
	Text   string
	Offset float64
}

// Layout is everything needed to draw the slider for the current value.
type Layout struct {
	Aria        Aria
	Reverse     bool
	Limit       float64
	Grab        float64
	Fill        float64
	Handle      float64
	Active      bool
	ShowTooltip bool
	Tooltip     string
	HandleLabel string
	Labels      []LabelItem
}

// Layout recomputes the render geometry from the value, configuration and
// interaction state. Nothing is cached.
func (s *Slider) Layout() Layout {
	g := s.Geometry()
	coords := g.Coordinates(g.ValueToOffset(s.value))

	l := Layout{
		Aria: Aria{
			ValueMin:    s.cfg.Min,
			ValueMax:    s.cfg.Max,
			ValueNow:    s.value,
			Orientation: s.cfg.Orientation,
		},
		Reverse:     s.cfg.Reverse,
		Limit:       g.Limit(),
		Grab:        g.Grab(),
		Fill:        coords.Fill,
		Handle:      coords.Handle,
		Active:      s.active,
		ShowTooltip: s.cfg.Tooltip && s.active,
		HandleLabel: s.cfg.HandleLabel,
	}
	if l.ShowTooltip {
		l.Tooltip = s.cfg.FormatValue(s.value)
	}
	for _, v := range sortedLabelValues(s.cfg.Labels, s.cfg.Reverse) {
		l.Labels = append(l.Labels, LabelItem{
			Value:  v,
			Text:   s.cfg.Labels[v],
			Offset: g.Coordinates(g.ValueToOffset(v)).Label,
		})
	}
	return l
}

// Listening reports whether document drag listeners are attached.
func (s *Slider) Listening() bool { return s.drag.attached() }
