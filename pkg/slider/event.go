package slider

import "fmt"

// EventKind is the kind of a normalized pointer event.
type EventKind int

const (
	MouseDown EventKind = iota
	MouseMove
	MouseUp
	TouchStart
	TouchMove
	TouchEnd
)

var eventKindNames = [...]string{"mousedown", "mousemove", "mouseup", "touchstart", "touchmove", "touchend"}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// IsTouch reports whether the kind belongs to the touch family.
func (k EventKind) IsTouch() bool {
	return k == TouchStart || k == TouchMove || k == TouchEnd
}

// Button identifies the mouse button of a pointer event.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// Part is the slider element an event landed on.
type Part int

const (
	PartNone Part = iota
	PartTrack
	PartHandle
	PartLabel
)

func (p Part) String() string {
	switch p {
	case PartTrack:
		return "track"
	case PartHandle:
		return "handle"
	case PartLabel:
		return "label"
	default:
		return "none"
	}
}

// Target is the element under the pointer. Label targets carry the
// discrete value they stand for.
type Target struct {
	Part     Part
	Value    float64
	HasValue bool
}

// LabelTarget returns the target of a label marker for value.
func LabelTarget(value float64) Target {
	return Target{Part: PartLabel, Value: value, HasValue: true}
}

// Event is implemented by *PointerEvent and *KeyEvent.
type Event interface {
	StopPropagation()
	PropagationStopped() bool
	PreventDefault()
	DefaultPrevented() bool
}

type eventFlags struct {
	stopped   bool
	prevented bool
}

func (f *eventFlags) StopPropagation()         { f.stopped = true }
func (f *eventFlags) PropagationStopped() bool { return f.stopped }
func (f *eventFlags) PreventDefault()          { f.prevented = true }
func (f *eventFlags) DefaultPrevented() bool   { return f.prevented }

// PointerEvent is a mouse or touch event in client coordinates.
type PointerEvent struct {
	eventFlags

	Kind    EventKind
	Button  Button
	ClientX float64
	ClientY float64
	// Touches are the active touch points of a touch event.
	Touches []Point
	Target  Target
}

// Client returns the coordinate the event refers to: the first touch point
// when there is one, the pointer position otherwise.
func (e *PointerEvent) Client() Point {
	if len(e.Touches) > 0 {
		return e.Touches[0]
	}
	return Point{X: e.ClientX, Y: e.ClientY}
}

// Key is a key the slider understands.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// KeyEvent is a key press delivered to the focused handle.
type KeyEvent struct {
	eventFlags

	Key Key
}
