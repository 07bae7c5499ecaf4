package slider

import "math"

// Geometry converts between domain values and offsets along the track.
// It is a pure value: every method depends only on the configuration and
// the measured limit and grab.
type Geometry struct {
	cfg   Config
	limit float64
	grab  float64
}

// Coords are the rendered offsets for one value, measured from the
// direction edge of the track.
type Coords struct {
	Fill   float64
	Handle float64
	Label  float64
}

// NewGeometry builds a Geometry. A negative limit is treated as zero.
func NewGeometry(cfg Config, limit, grab float64) Geometry {
	return Geometry{cfg: cfg, limit: math.Max(limit, 0), grab: grab}
}

func (g Geometry) Limit() float64 { return g.limit }
func (g Geometry) Grab() float64  { return g.grab }

// ValueToOffset maps value to a whole offset in [0, limit]. The value is
// not clamped first.
func (g Geometry) ValueToOffset(value float64) float64 {
	span := g.cfg.Max - g.cfg.Min
	percentage := 0.0
	if span != 0 {
		percentage = (value - g.cfg.Min) / span
	}
	return round(percentage * g.limit)
}

// OffsetToValue maps a raw offset to a stepped value in [Min, Max].
// Horizontal sliders grow from the origin edge, vertical ones shrink from
// it so that moving up reads as more.
func (g Geometry) OffsetToValue(raw float64) float64 {
	if g.limit == 0 {
		// not measured yet: everything collapses to the origin value
		return g.cfg.Min
	}
	percentage := clamp(raw, 0, g.limit) / g.limit
	stepped := g.cfg.Step * round(percentage*(g.cfg.Max-g.cfg.Min)/g.cfg.Step)

	value := stepped + g.cfg.Min
	if g.cfg.Orientation == Vertical {
		value = g.cfg.Max - stepped
	}
	return g.cfg.Clamp(value)
}

// EventToOffset returns the signed distance of the pointer from the track's
// direction edge, minus the grab, so that increasing offset always means
// moving away from the origin edge.
func (g Geometry) EventToOffset(ev *PointerEvent, track Rect) float64 {
	coordinate := g.cfg.Orientation.coordinate(ev.Client())
	edge := g.cfg.Orientation.edge(track, g.cfg.Reverse)
	if g.cfg.Reverse {
		return edge - coordinate - g.grab
	}
	return coordinate - edge - g.grab
}

// Position is the value under the pointer.
func (g Geometry) Position(ev *PointerEvent, track Rect) float64 {
	return g.OffsetToValue(g.EventToOffset(ev, track))
}

// Coordinates snaps raw through a value and back, so the handle always sits
// on a reachable step.
func (g Geometry) Coordinates(raw float64) Coords {
	value := g.OffsetToValue(raw)
	position := g.ValueToOffset(value)

	var handle, fill float64
	if g.cfg.Orientation == Horizontal {
		handle = position + g.grab
		fill = handle
	} else {
		handle = position
		fill = g.limit - handle
	}
	return Coords{Fill: fill, Handle: handle, Label: handle}
}

// round rounds half toward positive infinity.
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}
