package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingTarget records listener registrations on top of a Document.
type countingTarget struct {
	*Document
	added   int
	removed int
}

func (c *countingTarget) AddEventListener(kind EventKind, l Listener) ListenerID {
	c.added++
	return c.Document.AddEventListener(kind, l)
}

func (c *countingTarget) RemoveEventListener(id ListenerID) {
	c.removed++
	c.Document.RemoveEventListener(id)
}

type recorder struct {
	calls    []string
	values   []float64
	last     []float64
	starts   int
	complete int
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnChangeStart: func(*PointerEvent) {
			r.starts++
			r.calls = append(r.calls, "start")
		},
		OnChange: func(v float64, _ Event) {
			r.values = append(r.values, v)
			r.calls = append(r.calls, "change")
		},
		GetLastValue: func(v float64) {
			r.last = append(r.last, v)
			r.calls = append(r.calls, "last")
		},
		OnChangeComplete: func(*PointerEvent) {
			r.complete++
			r.calls = append(r.calls, "complete")
		},
	}
}

func (r *recorder) lastValue() float64 {
	if len(r.values) == 0 {
		return -1
	}
	return r.values[len(r.values)-1]
}

// newTestSlider mounts a 200px track with a 20px handle: limit 180, grab 10.
func newTestSlider(t *testing.T, cfg Config) (*Slider, *countingTarget, *recorder) {
	t.Helper()
	doc := &countingTarget{Document: NewDocument()}
	rec := &recorder{}
	s, err := New(cfg, WithDocument(doc), WithCallbacks(rec.callbacks()))
	require.NoError(t, err)
	size := Rect{W: 200, H: 20}
	handle := Rect{W: 20, H: 20}
	if cfg.Orientation == Vertical {
		size = Rect{W: 20, H: 200}
	}
	s.Mount(NewBox(size), NewBox(handle))
	return s, doc, rec
}

// dispatch mimics a host: element routing first, then the document.
func dispatch(s *Slider, doc *countingTarget, ev *PointerEvent) {
	s.HandlePointer(ev)
	if !ev.PropagationStopped() {
		doc.Dispatch(ev)
	}
}

func press(x float64, part Part) *PointerEvent {
	return &PointerEvent{Kind: MouseDown, Button: ButtonPrimary, ClientX: x, ClientY: 10, Target: Target{Part: part}}
}

func TestKeyboardStepsClampAtMax(t *testing.T) {
	s, _, rec := newTestSlider(t, Config{Min: 0, Max: 10, Step: 5})
	s.SetValue(0)

	for _, want := range []float64{5, 10, 10} {
		ev := &KeyEvent{Key: KeyUp}
		s.HandleKey(ev)
		assert.True(t, ev.DefaultPrevented())
		require.Equal(t, want, rec.lastValue())
		s.SetValue(rec.lastValue())
	}
	assert.Equal(t, []float64{5, 10, 10}, rec.values)
}

func TestKeyboardStepsClampAtMin(t *testing.T) {
	s, _, rec := newTestSlider(t, Config{Min: 0, Max: 10, Step: 5})
	s.SetValue(3)

	s.HandleKey(&KeyEvent{Key: KeyLeft})
	assert.Equal(t, 0.0, rec.lastValue())
	s.SetValue(0)
	s.HandleKey(&KeyEvent{Key: KeyDown})
	assert.Equal(t, 0.0, rec.lastValue())
	s.HandleKey(&KeyEvent{Key: KeyRight})
	assert.Equal(t, 5.0, rec.lastValue())
}

func TestKeyboardIgnoresOtherKeys(t *testing.T) {
	s, _, rec := newTestSlider(t, Config{Min: 0, Max: 10, Step: 5})
	ev := &KeyEvent{Key: KeyOther}
	s.HandleKey(ev)
	assert.False(t, ev.DefaultPrevented())
	assert.Empty(t, rec.values)
}

func TestDragLifecycle(t *testing.T) {
	s, doc, rec := newTestSlider(t, horizontalConfig())
	s.SetValue(50)

	dispatch(s, doc, press(100, PartHandle))
	assert.True(t, s.Active())
	assert.True(t, s.Listening())
	assert.Equal(t, 2, doc.Len())

	dispatch(s, doc, &PointerEvent{Kind: MouseMove, ClientX: 190})
	assert.Equal(t, 100.0, rec.lastValue())
	s.SetValue(100)

	dispatch(s, doc, &PointerEvent{Kind: MouseUp, ClientX: 500})
	assert.False(t, s.Active())
	assert.False(t, s.Listening())
	assert.Equal(t, 0, doc.Len())
	assert.Equal(t, []float64{100}, rec.last)
	assert.Equal(t, []string{"start", "change", "change", "last", "complete"}, rec.calls)
}

func TestDoubleEndDetachesOnce(t *testing.T) {
	s, doc, rec := newTestSlider(t, horizontalConfig())

	dispatch(s, doc, press(100, PartHandle))
	up := &PointerEvent{Kind: MouseUp, Target: Target{Part: PartTrack}}
	dispatch(s, doc, up)
	s.End(&PointerEvent{Kind: MouseUp})

	assert.Equal(t, 2, doc.added)
	assert.Equal(t, 2, doc.removed)
	assert.Equal(t, 1, rec.complete)
	assert.Len(t, rec.last, 1)
}

func TestSecondStartIsIgnored(t *testing.T) {
	s, doc, rec := newTestSlider(t, horizontalConfig())

	s.Start(press(100, PartHandle))
	s.Start(press(120, PartHandle))
	assert.Equal(t, 1, rec.starts)
	assert.Equal(t, 2, doc.added)
}

func TestStartRequiresPrimaryButton(t *testing.T) {
	s, doc, rec := newTestSlider(t, horizontalConfig())
	ev := press(100, PartHandle)
	ev.Button = ButtonSecondary

	s.Start(ev)
	assert.False(t, s.Active())
	assert.Zero(t, doc.added)
	assert.Zero(t, rec.starts)
}

func TestLabelValueOverridesGeometry(t *testing.T) {
	s, doc, rec := newTestSlider(t, horizontalConfig())

	dispatch(s, doc, press(100, PartHandle))
	move := &PointerEvent{Kind: MouseMove, ClientX: 190, Target: LabelTarget(30)}
	dispatch(s, doc, move)

	assert.Equal(t, 30.0, rec.lastValue())
	assert.True(t, move.PropagationStopped())
}

func TestLabelClickJumps(t *testing.T) {
	s, doc, rec := newTestSlider(t, horizontalConfig())
	ev := &PointerEvent{Kind: MouseDown, Button: ButtonPrimary, ClientX: 5, Target: LabelTarget(75)}

	dispatch(s, doc, ev)
	assert.Equal(t, []float64{75}, rec.values)
	assert.False(t, s.Active())
}

func TestTrackClickJumpsAndCompletesOnRelease(t *testing.T) {
	s, doc, rec := newTestSlider(t, horizontalConfig())

	dispatch(s, doc, press(100, PartTrack))
	assert.Equal(t, []float64{50}, rec.values)
	assert.False(t, s.Active())
	assert.Zero(t, doc.Len())
	s.SetValue(50)

	dispatch(s, doc, &PointerEvent{Kind: MouseUp, ClientX: 100, Target: Target{Part: PartTrack}})
	assert.Equal(t, 1, rec.complete)
	assert.Equal(t, []float64{50}, rec.last)

	// a stray release completes nothing
	dispatch(s, doc, &PointerEvent{Kind: MouseUp, ClientX: 100, Target: Target{Part: PartTrack}})
	assert.Equal(t, 1, rec.complete)
}

func TestTrackClickReleasedElsewhereIsDropped(t *testing.T) {
	s, doc, rec := newTestSlider(t, horizontalConfig())

	dispatch(s, doc, press(100, PartTrack))
	assert.Equal(t, []float64{50}, rec.values)

	dispatch(s, doc, &PointerEvent{Kind: MouseUp, ClientX: 300})
	assert.Zero(t, rec.complete)

	// a later release on the track belongs to no click
	dispatch(s, doc, &PointerEvent{Kind: MouseUp, ClientX: 20, Target: Target{Part: PartTrack}})
	assert.Zero(t, rec.complete)
	assert.Empty(t, rec.last)
}

func TestTrackClickReleasedOnLabelCompletes(t *testing.T) {
	s, doc, rec := newTestSlider(t, horizontalConfig())

	dispatch(s, doc, press(100, PartTrack))
	dispatch(s, doc, &PointerEvent{Kind: MouseUp, ClientX: 100, Target: LabelTarget(50)})
	assert.Equal(t, 1, rec.complete)
}

func TestTouchGesture(t *testing.T) {
	s, doc, rec := newTestSlider(t, horizontalConfig())

	dispatch(s, doc, &PointerEvent{Kind: TouchStart, Touches: []Point{{X: 100}}, Target: Target{Part: PartTrack}})
	assert.True(t, s.Active())
	assert.Equal(t, 1, rec.starts)

	dispatch(s, doc, &PointerEvent{Kind: TouchMove, Touches: []Point{{X: 28}}, Target: Target{Part: PartHandle}})
	assert.Equal(t, 10.0, rec.lastValue())

	// the end bubbles from handle to track; the gesture completes once
	dispatch(s, doc, &PointerEvent{Kind: TouchEnd, Target: Target{Part: PartHandle}})
	assert.False(t, s.Active())
	assert.Equal(t, 1, rec.complete)
	assert.Zero(t, doc.Len())
}

func TestMissingCallbacksAreNoOps(t *testing.T) {
	doc := NewDocument()
	s, err := New(horizontalConfig(), WithDocument(doc))
	require.NoError(t, err)
	s.Mount(NewBox(Rect{W: 200, H: 20}), NewBox(Rect{W: 20, H: 20}))

	assert.NotPanics(t, func() {
		s.HandlePointer(press(100, PartHandle))
		doc.Dispatch(&PointerEvent{Kind: MouseMove, ClientX: 150})
		doc.Dispatch(&PointerEvent{Kind: MouseUp})
		s.HandlePointer(press(40, PartTrack))
		s.HandlePointer(&PointerEvent{Kind: MouseUp, Target: Target{Part: PartTrack}})
		s.HandleKey(&KeyEvent{Key: KeyUp})
	})
	assert.Zero(t, doc.Len())
}

func TestCloseDetachesListeners(t *testing.T) {
	s, doc, _ := newTestSlider(t, horizontalConfig())
	dispatch(s, doc, press(100, PartHandle))
	require.Equal(t, 2, doc.Len())

	s.Close()
	assert.Zero(t, doc.Len())
	assert.False(t, s.Active())

	s.Close()
	assert.Equal(t, 2, doc.removed)
}

func TestInstancesListenIndependently(t *testing.T) {
	doc := &countingTarget{Document: NewDocument()}
	var a, b recorder
	sa, err := New(horizontalConfig(), WithDocument(doc), WithCallbacks(a.callbacks()))
	require.NoError(t, err)
	sb, err := New(horizontalConfig(), WithDocument(doc), WithCallbacks(b.callbacks()))
	require.NoError(t, err)
	sa.Mount(NewBox(Rect{W: 200, H: 20}), NewBox(Rect{W: 20, H: 20}))
	sb.Mount(NewBox(Rect{Y: 40, W: 200, H: 20}), NewBox(Rect{W: 20, H: 20}))

	sa.HandlePointer(press(100, PartHandle))
	sb.HandlePointer(press(100, PartHandle))
	assert.Equal(t, 4, doc.Len())

	sa.End(&PointerEvent{Kind: MouseUp})
	assert.Equal(t, 2, doc.Len())
	assert.True(t, sb.Active())

	doc.Dispatch(&PointerEvent{Kind: MouseMove, ClientX: 28})
	assert.Equal(t, 10.0, b.lastValue())
	assert.Equal(t, 50.0, a.lastValue())
}

func TestDocumentSkipsListenersRemovedDuringDispatch(t *testing.T) {
	doc := NewDocument()
	var calls []string
	var second ListenerID
	doc.AddEventListener(MouseUp, func(*PointerEvent) {
		calls = append(calls, "first")
		doc.RemoveEventListener(second)
	})
	second = doc.AddEventListener(MouseUp, func(*PointerEvent) {
		calls = append(calls, "second")
	})
	doc.AddEventListener(MouseMove, func(*PointerEvent) {
		calls = append(calls, "move")
	})

	doc.Dispatch(&PointerEvent{Kind: MouseUp})
	assert.Equal(t, []string{"first"}, calls)
	assert.Equal(t, 2, doc.Len())

	doc.RemoveEventListener(999)
	assert.Equal(t, 2, doc.Len())
}
