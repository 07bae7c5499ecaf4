package slider

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ChangeMsg is sent for every value change: each drag move, track or label
// click, and key step.
type ChangeMsg struct {
	ID    string
	Value float64
}

// ChangeStartMsg is sent when a drag begins.
type ChangeStartMsg struct {
	ID string
}

// ChangeCompleteMsg is sent once per completed gesture with the value the
// host had when the gesture ended.
type ChangeCompleteMsg struct {
	ID    string
	Value float64
}

// Model is a bubbletea component around a Slider. The host owns the value:
// it handles ChangeMsg and calls SetValue.
//
// Horizontal sliders occupy three rows from the origin: tooltip, track and
// labels. Vertical sliders occupy one row per track cell with labels and
// tooltip to the right.
type Model struct {
	ID     string
	KeyMap KeyMap
	Styles Styles

	slider   *Slider
	document *Document
	observer *ResizeObserver
	track    *Box
	handle   *Box
	outbox   *[]tea.Msg

	x, y    int
	length  int
	focused bool
}

// NewModel builds a slider model whose track is length cells long.
func NewModel(id string, cfg Config, length int, logger *slog.Logger) (Model, error) {
	m := Model{
		ID:       id,
		KeyMap:   DefaultKeyMap(),
		Styles:   DefaultStyles(),
		document: NewDocument(),
		observer: NewResizeObserver(),
		track:    NewBox(Rect{}),
		handle:   NewBox(Rect{}),
		outbox:   new([]tea.Msg),
		length:   length,
	}

	var last float64
	out := m.outbox
	cb := Callbacks{
		OnChangeStart: func(*PointerEvent) {
			*out = append(*out, ChangeStartMsg{ID: id})
		},
		OnChange: func(v float64, _ Event) {
			*out = append(*out, ChangeMsg{ID: id, Value: v})
		},
		GetLastValue: func(v float64) { last = v },
		OnChangeComplete: func(*PointerEvent) {
			*out = append(*out, ChangeCompleteMsg{ID: id, Value: last})
		},
	}

	opts := []Option{WithCallbacks(cb), WithDocument(m.document), WithObserver(m.observer)}
	if logger != nil {
		opts = append(opts, WithLogger(logger.With("slider", id)))
	}
	s, err := New(cfg, opts...)
	if err != nil {
		return Model{}, err
	}
	m.slider = s
	m.layoutBoxes()
	s.Mount(m.track, m.handle)
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles mouse, key and resize messages and returns the resulting
// slider messages as a sequence.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if ev, ok := m.pointerEvent(msg); ok {
			m.slider.HandlePointer(ev)
			if !ev.PropagationStopped() {
				m.document.Dispatch(ev)
			}
		}

	case tea.KeyMsg:
		if !m.focused {
			break
		}
		ev := &KeyEvent{}
		switch {
		case key.Matches(msg, m.KeyMap.Increase):
			ev.Key = KeyUp
		case key.Matches(msg, m.KeyMap.Decrease):
			ev.Key = KeyDown
		}
		m.slider.HandleKey(ev)

	case tea.WindowSizeMsg:
		m.observer.Notify()
	}
	return m, m.flush()
}

func (m Model) flush() tea.Cmd {
	if len(*m.outbox) == 0 {
		return nil
	}
	msgs := *m.outbox
	*m.outbox = nil
	cmds := make([]tea.Cmd, len(msgs))
	for i, msg := range msgs {
		msg := msg
		cmds[i] = func() tea.Msg { return msg }
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

func (m Model) pointerEvent(msg tea.MouseMsg) (*PointerEvent, bool) {
	ev := &PointerEvent{
		ClientX: float64(msg.X) + 0.5,
		ClientY: float64(msg.Y) + 0.5,
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil, false
		}
		ev.Kind = MouseDown
		ev.Button = ButtonPrimary
	case tea.MouseActionMotion:
		ev.Kind = MouseMove
	case tea.MouseActionRelease:
		ev.Kind = MouseUp
	default:
		return nil, false
	}
	ev.Target = m.hitTest(msg.X, msg.Y)
	return ev, true
}

// hitTest finds the slider element drawn at a screen cell.
func (m Model) hitTest(x, y int) Target {
	l := m.slider.Layout()
	tb := m.track.Bounds()
	tx, ty, tw := int(tb.X), int(tb.Y), int(tb.W)
	n, hw, start := l.trackCells(), l.handleCells(), l.handleStart()

	if m.slider.Config().Orientation == Vertical {
		if x >= tx && x < tx+tw && y >= ty && y < ty+n {
			if row := y - ty; row >= start && row < start+hw {
				return Target{Part: PartHandle}
			}
			return Target{Part: PartTrack}
		}
		labelX := tx + tw + 1
		tick := lipgloss.Width(m.Styles.LabelTick)
		for _, sp := range l.labelSpans() {
			if y == ty+sp.Start && x >= labelX && x < labelX+tick+sp.Width {
				return LabelTarget(sp.Value)
			}
		}
		return Target{}
	}

	if y == ty && x >= tx && x < tx+n {
		if col := x - tx; col >= start && col < start+hw {
			return Target{Part: PartHandle}
		}
		return Target{Part: PartTrack}
	}
	if y == ty+1 {
		for _, sp := range l.labelSpans() {
			if x >= tx+sp.Start && x < tx+sp.Start+sp.Width {
				return LabelTarget(sp.Value)
			}
		}
	}
	return Target{}
}

// layoutBoxes positions the track and sizes the handle, then lets the
// observer report any size change.
func (m Model) layoutBoxes() {
	cfg := m.slider.Config()
	hw := float64(lipgloss.Width(m.Styles.HandleText(cfg.HandleLabel)))
	x, y, length := float64(m.x), float64(m.y), float64(m.length)
	if cfg.Orientation == Vertical {
		m.track.SetBounds(Rect{X: x, Y: y, W: hw, H: length})
		m.handle.SetBounds(Rect{W: hw, H: 1})
	} else {
		m.track.SetBounds(Rect{X: x, Y: y + 1, W: length, H: 1})
		m.handle.SetBounds(Rect{W: hw, H: 1})
	}
	m.observer.Notify()
}

func (m Model) View() string {
	return Render(m.slider.Layout(), m.Styles, m.focused)
}

// SetValue mirrors the host's value.
func (m *Model) SetValue(v float64) { m.slider.SetValue(v) }

func (m Model) Value() float64 { return m.slider.Value() }

// SetOrigin tells the model where its top-left corner is drawn on screen.
func (m *Model) SetOrigin(x, y int) {
	m.x, m.y = x, y
	m.layoutBoxes()
}

// SetLength resizes the track.
func (m *Model) SetLength(n int) {
	m.length = n
	m.layoutBoxes()
}

func (m Model) Length() int { return m.length }

// SetConfig swaps the configuration, e.g. to flip Reverse at runtime.
func (m *Model) SetConfig(cfg Config) error {
	if err := m.slider.SetConfig(cfg); err != nil {
		return err
	}
	m.layoutBoxes()
	m.slider.Measure()
	return nil
}

func (m Model) Config() Config { return m.slider.Config() }

// Slider exposes the underlying controller.
func (m Model) Slider() *Slider { return m.slider }

func (m *Model) Focus() { m.focused = true }
func (m *Model) Blur()  { m.focused = false }

func (m Model) Focused() bool { return m.focused }

// Close releases document listeners and stops observing.
func (m Model) Close() {
	m.slider.Close()
}

// SetStyles swaps the styles and re-measures, since the handle width may
// change with them.
func (m *Model) SetStyles(st Styles) {
	m.Styles = st
	m.layoutBoxes()
}

// Size is the width and height of the rendered view in cells.
func (m Model) Size() (w, h int) {
	v := m.View()
	return lipgloss.Width(v), lipgloss.Height(v)
}

// Increment steps the value up as the Increase key would, regardless of
// focus.
func (m Model) Increment() tea.Cmd {
	m.slider.HandleKey(&KeyEvent{Key: KeyUp})
	return m.flush()
}

// Decrement steps the value down as the Decrease key would.
func (m Model) Decrement() tea.Cmd {
	m.slider.HandleKey(&KeyEvent{Key: KeyDown})
	return m.flush()
}
