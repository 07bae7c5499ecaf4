package slider

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func horizontalConfig() Config {
	return Config{Min: 0, Max: 100, Step: 1, Orientation: Horizontal}
}

func TestEventToOffsetMidTrack(t *testing.T) {
	g := NewGeometry(horizontalConfig(), 180, 10)
	track := Rect{X: 0, Y: 0, W: 200, H: 20}

	ev := &PointerEvent{Kind: MouseMove, ClientX: 100, ClientY: 5}
	assert.Equal(t, 90.0, g.EventToOffset(ev, track))
	assert.Equal(t, 50.0, g.Position(ev, track))
}

func TestOffsetToValueRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name  string
		step  float64
		limit float64
	}{
		{"step 1 limit 100", 1, 100},
		{"step 1 limit 180", 1, 180},
		{"step 1 limit 200", 1, 200},
		{"step 5 limit 180", 5, 180},
		{"step 25 limit 37", 25, 37},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg := horizontalConfig()
			cfg.Step = tt.step
			g := NewGeometry(cfg, tt.limit, 10)
			for v := cfg.Min; v <= cfg.Max; v += tt.step {
				assert.Equal(t, v, g.OffsetToValue(g.ValueToOffset(v)), "value %v", v)
			}
		})
	}
}

func TestOffsetToValueClamps(t *testing.T) {
	for _, o := range []Orientation{Horizontal, Vertical} {
		cfg := Config{Min: -20, Max: 30, Step: 0.5, Orientation: o}
		g := NewGeometry(cfg, 180, 10)
		for _, raw := range []float64{math.Inf(-1), -1e9, -1, 0, 0.3, 45.5, 179.9, 180, 181, 1e9, math.Inf(1)} {
			v := g.OffsetToValue(raw)
			assert.GreaterOrEqual(t, v, cfg.Min, "%s raw %v", o, raw)
			assert.LessOrEqual(t, v, cfg.Max, "%s raw %v", o, raw)
		}
	}
}

func TestOffsetToValueZeroLimit(t *testing.T) {
	for _, o := range []Orientation{Horizontal, Vertical} {
		cfg := Config{Min: 3, Max: 9, Step: 1, Orientation: o}
		g := NewGeometry(cfg, 0, 0)
		for _, raw := range []float64{-5, 0, 1, 500} {
			assert.Equal(t, 3.0, g.OffsetToValue(raw), "%s raw %v", o, raw)
		}
		assert.Equal(t, 0.0, g.ValueToOffset(7))
	}
}

func TestNegativeLimitIsZero(t *testing.T) {
	g := NewGeometry(horizontalConfig(), -40, 10)
	assert.Equal(t, 0.0, g.Limit())
}

func TestValueToOffsetDegenerateRange(t *testing.T) {
	g := NewGeometry(Config{Min: 5, Max: 5, Step: 1}, 100, 0)
	assert.Equal(t, 0.0, g.ValueToOffset(7))
}

func TestValueToOffsetIsNotClamped(t *testing.T) {
	g := NewGeometry(horizontalConfig(), 200, 0)
	assert.Equal(t, 240.0, g.ValueToOffset(120))
	assert.Equal(t, -20.0, g.ValueToOffset(-10))
}

func TestNonDividingStepStopsShortOfMax(t *testing.T) {
	g := NewGeometry(Config{Min: 0, Max: 10, Step: 3}, 100, 0)
	assert.Equal(t, 9.0, g.OffsetToValue(100))
}

func TestVerticalGrowsUpward(t *testing.T) {
	cfg := Config{Min: 0, Max: 100, Step: 1, Orientation: Vertical}
	g := NewGeometry(cfg, 180, 10)
	track := Rect{X: 0, Y: 0, W: 20, H: 200}

	top := &PointerEvent{ClientY: 0}
	bottom := &PointerEvent{ClientY: 200}
	assert.Equal(t, 100.0, g.Position(top, track))
	assert.Equal(t, 0.0, g.Position(bottom, track))
}

func TestOrientationSymmetry(t *testing.T) {
	h := NewGeometry(horizontalConfig(), 180, 10)
	vcfg := horizontalConfig()
	vcfg.Orientation = Vertical
	v := NewGeometry(vcfg, 180, 10)

	hTrack := Rect{X: 0, Y: 0, W: 200, H: 20}
	vTrack := Rect{X: 0, Y: 0, W: 20, H: 200}

	for _, d := range []float64{0, 18, 36, 90, 162, 180} {
		hev := &PointerEvent{ClientX: 10 + d, ClientY: 10}
		vev := &PointerEvent{ClientX: 10, ClientY: 200 - 10 - d}
		assert.Equal(t, h.Position(hev, hTrack), v.Position(vev, vTrack), "distance %v", d)
	}
}

func TestReverseRightEdgeIsMin(t *testing.T) {
	cfg := horizontalConfig()
	cfg.Reverse = true
	g := NewGeometry(cfg, 180, 10)
	track := Rect{X: 0, Y: 0, W: 200, H: 20}

	assert.Equal(t, 0.0, g.Position(&PointerEvent{ClientX: 199.5}, track))
	assert.Equal(t, 100.0, g.Position(&PointerEvent{ClientX: 0.5}, track))
}

func TestTouchUsesFirstTouchPoint(t *testing.T) {
	g := NewGeometry(horizontalConfig(), 180, 10)
	track := Rect{X: 50, Y: 0, W: 200, H: 20}
	ev := &PointerEvent{Kind: TouchMove, Touches: []Point{{X: 150, Y: 0}, {X: 60, Y: 0}}}
	assert.Equal(t, 90.0, g.EventToOffset(ev, track))
}

func TestCoordinates(t *testing.T) {
	h := NewGeometry(horizontalConfig(), 180, 10)
	c := h.Coordinates(h.ValueToOffset(50))
	assert.Equal(t, Coords{Fill: 100, Handle: 100, Label: 100}, c)

	vcfg := horizontalConfig()
	vcfg.Orientation = Vertical
	v := NewGeometry(vcfg, 180, 10)
	c = v.Coordinates(v.ValueToOffset(80))
	assert.Equal(t, Coords{Fill: 144, Handle: 36, Label: 36}, c)
}

func TestCoordinatesSnapToStep(t *testing.T) {
	cfg := Config{Min: 0, Max: 10, Step: 5}
	g := NewGeometry(cfg, 100, 0)
	// 30px is value 3, which snaps to 5
	assert.Equal(t, 50.0, g.Coordinates(30).Handle)
}
