package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMountMeasuresLimitAndGrab(t *testing.T) {
	s, err := New(horizontalConfig())
	require.NoError(t, err)
	assert.Zero(t, s.Limit())
	assert.Zero(t, s.Grab())

	s.Mount(NewBox(Rect{W: 200, H: 4}), NewBox(Rect{W: 20, H: 30}))
	assert.Equal(t, 180.0, s.Limit())
	assert.Equal(t, 10.0, s.Grab())
}

func TestVerticalMeasuresHeight(t *testing.T) {
	cfg := horizontalConfig()
	cfg.Orientation = Vertical
	s, err := New(cfg)
	require.NoError(t, err)

	s.Mount(NewBox(Rect{W: 10, H: 150}), NewBox(Rect{W: 30, H: 30}))
	assert.Equal(t, 120.0, s.Limit())
	assert.Equal(t, 15.0, s.Grab())
}

func TestMeasureBeforeLayoutKeepsZero(t *testing.T) {
	obs := NewResizeObserver()
	s, err := New(horizontalConfig(), WithObserver(obs))
	require.NoError(t, err)

	track := NewBox(Rect{})
	handle := NewBox(Rect{W: 20, H: 20})
	s.Mount(track, handle)
	assert.Zero(t, s.Limit())
	assert.Zero(t, s.Grab())

	track.SetBounds(Rect{W: 120, H: 20})
	obs.Notify()
	assert.Equal(t, 100.0, s.Limit())

	// collapsing the track keeps the last good measurement
	track.SetBounds(Rect{})
	obs.Notify()
	assert.Equal(t, 100.0, s.Limit())
	assert.Equal(t, 10.0, s.Grab())
}

func TestTrackSmallerThanHandle(t *testing.T) {
	s, err := New(horizontalConfig())
	require.NoError(t, err)
	s.Mount(NewBox(Rect{W: 10, H: 10}), NewBox(Rect{W: 20, H: 20}))
	assert.Zero(t, s.Limit())
	assert.Equal(t, 10.0, s.Grab())
}

func TestResizeObserverNotifiesOnSizeChange(t *testing.T) {
	obs := NewResizeObserver()
	box := NewBox(Rect{W: 10, H: 1})
	calls := 0
	obs.Observe(box, func() { calls++ })

	obs.Notify()
	obs.Notify()
	assert.Equal(t, 1, calls)

	// moving without resizing is not a size change
	box.SetBounds(Rect{X: 5, Y: 3, W: 10, H: 1})
	obs.Notify()
	assert.Equal(t, 1, calls)

	box.SetBounds(Rect{X: 5, Y: 3, W: 12, H: 1})
	obs.Notify()
	assert.Equal(t, 2, calls)

	obs.Disconnect()
	assert.False(t, obs.Observing())
	box.SetBounds(Rect{W: 30, H: 1})
	obs.Notify()
	assert.Equal(t, 2, calls)
}

func TestResizeDrivesMeasurement(t *testing.T) {
	obs := NewResizeObserver()
	s, err := New(horizontalConfig(), WithObserver(obs))
	require.NoError(t, err)
	track := NewBox(Rect{W: 200, H: 20})
	s.Mount(track, NewBox(Rect{W: 20, H: 20}))
	require.Equal(t, 180.0, s.Limit())

	track.SetBounds(Rect{W: 100, H: 20})
	obs.Notify()
	assert.Equal(t, 80.0, s.Limit())

	s.Close()
	track.SetBounds(Rect{W: 300, H: 20})
	obs.Notify()
	assert.Equal(t, 80.0, s.Limit())
}
