package audio

import (
	"encoding/binary"
	"math"
)

// GainFor maps a volume slider value in [lo, hi] to a linear gain. The
// curve is quadratic so that the lower half of the slider stays audible
// but usable.
func GainFor(v, lo, hi float64) float64 {
	if hi <= lo {
		return 1
	}
	p := min(max((v-lo)/(hi-lo), 0), 1)
	return p * p
}

// applyGain scales signed 16-bit little-endian samples in place.
func applyGain(buf []byte, gain float64) {
	if gain >= 1 {
		return
	}
	for i := 0; i+1 < len(buf); i += bytesPerSample {
		s := int16(binary.LittleEndian.Uint16(buf[i:]))
		v := math.Round(float64(s) * gain)
		v = min(max(v, math.MinInt16), math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i:], uint16(int16(v)))
	}
}
