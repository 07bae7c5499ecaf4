package slider

import (
	"fmt"
	"strings"
)

// Orientation selects the axis a slider travels along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation accepts "horizontal"/"h" and "vertical"/"v".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("unknown orientation %q", s)
}

// Point is a position in client (screen) coordinates.
type Point struct {
	X, Y float64
}

// Rect is a box in client coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether p lies inside r (right and bottom edges excluded).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// dimension is the measured size along the axis: width or height.
func (o Orientation) dimension(r Rect) float64 {
	if o == Vertical {
		return r.H
	}
	return r.W
}

// coordinate picks clientX or clientY.
func (o Orientation) coordinate(p Point) float64 {
	if o == Vertical {
		return p.Y
	}
	return p.X
}

// edge is the track edge offsets are measured from: left/top, or
// right/bottom when reversed.
func (o Orientation) edge(r Rect, reverse bool) float64 {
	switch {
	case o == Vertical && reverse:
		return r.Bottom()
	case o == Vertical:
		return r.Top()
	case reverse:
		return r.Right()
	default:
		return r.Left()
	}
}
