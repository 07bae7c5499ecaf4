package slider

import (
	"math"
	"slices"
)

// dragListeners is the document-level move/up registration of one gesture.
// attach and detach are idempotent, so every attach is undone exactly once.
type dragListeners struct {
	target EventTarget
	ids    []ListenerID
}

func (d *dragListeners) attach(target EventTarget, move, end Listener) bool {
	if d.target != nil {
		return false
	}
	d.target = target
	d.ids = []ListenerID{
		target.AddEventListener(MouseMove, move),
		target.AddEventListener(MouseUp, end),
	}
	return true
}

func (d *dragListeners) detach() bool {
	if d.target == nil {
		return false
	}
	for _, id := range d.ids {
		d.target.RemoveEventListener(id)
	}
	d.target = nil
	d.ids = nil
	return true
}

func (d *dragListeners) attached() bool {
	return d.target != nil
}

// HandlePointer routes an event that landed on the slider from its target
// up through the enclosing elements: handles and labels sit inside the
// track. Routing stops once a handler stops propagation. Hosts dispatch the
// event to the document afterwards unless propagation was stopped.
//
// A click-to-jump waits for its release on the track. A release elsewhere,
// or the next press, drops it.
func (s *Slider) HandlePointer(ev *PointerEvent) {
	if s.pending && (ev.Kind == MouseDown || ev.Kind == MouseUp && !reachesTrack(ev.Target.Part)) {
		s.pending = false
	}
	for _, part := range propagationPath(ev.Target.Part) {
		if h := s.elementHandler(part, ev.Kind); h != nil {
			h(ev)
		}
		if ev.PropagationStopped() {
			return
		}
	}
}

func propagationPath(p Part) []Part {
	switch p {
	case PartHandle, PartLabel:
		return []Part{p, PartTrack}
	case PartTrack:
		return []Part{PartTrack}
	}
	return nil
}

func reachesTrack(p Part) bool {
	return slices.Contains(propagationPath(p), PartTrack)
}

func (s *Slider) elementHandler(part Part, kind EventKind) Listener {
	switch part {
	case PartHandle:
		switch kind {
		case MouseDown:
			return s.Start
		case TouchMove:
			return s.Drag
		case TouchEnd:
			return s.End
		}
	case PartLabel:
		switch kind {
		case MouseDown:
			return s.Drag
		case TouchStart:
			return s.Start
		case TouchEnd:
			return s.End
		}
	case PartTrack:
		switch kind {
		case MouseDown:
			return s.Drag
		case MouseUp, TouchEnd:
			return s.End
		case TouchStart:
			return s.Start
		}
	}
	return nil
}

// Start begins a drag on a primary-button press or a touch. Document
// listeners are attached once; a second Start before End is ignored.
func (s *Slider) Start(ev *PointerEvent) {
	if !ev.Kind.IsTouch() && ev.Button != ButtonPrimary {
		return
	}
	if s.active {
		return
	}
	s.drag.attach(s.document, s.Drag, s.End)
	s.active = true
	s.log.Debug("drag started", "event", ev.Kind, "target", ev.Target.Part)
	if s.cb.OnChangeStart != nil {
		s.cb.OnChangeStart(ev)
	}
}

// Drag emits the value under the pointer, or the target's own value when it
// is a label marker.
func (s *Slider) Drag(ev *PointerEvent) {
	ev.StopPropagation()
	if s.cb.OnChange == nil {
		return
	}

	value := s.Geometry().Position(ev, s.trackBounds())
	if ev.Target.HasValue {
		value = ev.Target.Value
	}
	if !s.active {
		// click-to-jump; the matching release completes it
		s.pending = true
	}
	s.cb.OnChange(value, ev)
}

// End finishes the gesture. Ends without a gesture in progress only make
// sure the listeners are gone.
func (s *Slider) End(ev *PointerEvent) {
	if s.drag.detach() {
		s.log.Debug("drag listeners detached")
	}
	if !s.active && !s.pending {
		return
	}
	if s.cb.GetLastValue != nil {
		s.cb.GetLastValue(s.value)
	}
	s.active = false
	s.pending = false
	s.log.Debug("drag completed", "event", ev.Kind, "value", s.value)
	if s.cb.OnChangeComplete != nil {
		s.cb.OnChangeComplete(ev)
	}
}

// HandleKey steps the value by Step. Boundaries clamp inclusively.
func (s *Slider) HandleKey(ev *KeyEvent) {
	var value float64
	switch ev.Key {
	case KeyUp, KeyRight:
		value = math.Min(s.value+s.cfg.Step, s.cfg.Max)
	case KeyDown, KeyLeft:
		value = math.Max(s.value-s.cfg.Step, s.cfg.Min)
	default:
		return
	}
	ev.PreventDefault()
	if s.cb.OnChange != nil {
		s.cb.OnChange(value, ev)
	}
}
