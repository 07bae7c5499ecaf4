package slider

import "math"

// Element is a laid-out box the slider can measure.
type Element interface {
	Bounds() Rect
}

// Box is a mutable Element for hosts that position the slider themselves.
type Box struct {
	rect Rect
}

func NewBox(r Rect) *Box {
	return &Box{rect: r}
}

func (b *Box) Bounds() Rect { return b.rect }

func (b *Box) SetBounds(r Rect) { b.rect = r }

// Observer notifies a callback when an element's box size changes.
// An Observer watches one element at a time.
type Observer interface {
	Observe(el Element, fn func())
	Disconnect()
}

// ResizeObserver is an Observer for hosts without native size
// notifications. The host calls Notify whenever layout may have changed,
// e.g. on a terminal resize; the callback runs only on the first
// notification and when the observed size actually differs.
type ResizeObserver struct {
	el   Element
	fn   func()
	last Rect
	seen bool
}

func NewResizeObserver() *ResizeObserver {
	return &ResizeObserver{}
}

// Observe replaces any previously observed element.
func (o *ResizeObserver) Observe(el Element, fn func()) {
	o.el = el
	o.fn = fn
	o.seen = false
}

func (o *ResizeObserver) Notify() {
	if o.el == nil || o.fn == nil {
		return
	}
	b := o.el.Bounds()
	if o.seen && b.W == o.last.W && b.H == o.last.H {
		return
	}
	o.seen = true
	o.last = b
	o.fn()
}

func (o *ResizeObserver) Disconnect() {
	o.el = nil
	o.fn = nil
	o.seen = false
}

// Observing reports whether an element is being watched.
func (o *ResizeObserver) Observing() bool {
	return o.el != nil
}

// measurement is the movable range derived from the track and handle sizes.
type measurement struct {
	limit float64
	grab  float64
}

// measure reads track and handle sizes along the axis. ok is false while
// either is not laid out yet, in which case the previous measurement
// should be kept.
func measure(o Orientation, track, handle Element) (m measurement, ok bool) {
	if track == nil || handle == nil {
		return m, false
	}
	trackSize := o.dimension(track.Bounds())
	handleSize := o.dimension(handle.Bounds())
	if !(trackSize > 0) || !(handleSize > 0) || math.IsInf(trackSize, 0) || math.IsInf(handleSize, 0) {
		return m, false
	}
	return measurement{
		limit: math.Max(trackSize-handleSize, 0),
		grab:  handleSize / 2,
	}, true
}
