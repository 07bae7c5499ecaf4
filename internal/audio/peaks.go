package audio

import (
	"encoding/binary"

	"gonum.org/v1/gonum/floats"
)

// Peaks splits the track into columns and returns each column's loudest
// sample, scaled so the loudest column is 1. Silent tracks give zeros.
func (t *Track) Peaks(columns int) []float64 {
	frames := len(t.PCM) / bytesPerFrame
	if columns <= 0 || frames == 0 {
		return nil
	}
	peaks := make([]float64, columns)
	for c := range peaks {
		start := c * frames / columns
		end := max((c+1)*frames/columns, start+1)
		var peak int
		for f := start; f < end && f < frames; f++ {
			for ch := 0; ch < channels; ch++ {
				off := f*bytesPerFrame + ch*bytesPerSample
				s := int(int16(binary.LittleEndian.Uint16(t.PCM[off:])))
				peak = max(peak, s, -s)
			}
		}
		peaks[c] = float64(peak)
	}

	if top := floats.Max(peaks); top > 0 {
		floats.Scale(1/top, peaks)
	}
	return peaks
}
