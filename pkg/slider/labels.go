package slider

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// sortedLabelValues orders label values numerically, ascending unless
// reverse is set.
func sortedLabelValues(labels map[float64]string, reverse bool) []float64 {
	values := make([]float64, 0, len(labels))
	for v := range labels {
		values = append(values, v)
	}
	if reverse {
		sort.Sort(sort.Reverse(sort.Float64Slice(values)))
	} else {
		sort.Float64s(values)
	}
	return values
}

// Ticks returns n evenly spaced labels from Min to Max inclusive, snapped to
// the step grid and formatted with cfg.FormatValue.
func Ticks(cfg Config, n int) map[float64]string {
	if n < 2 {
		n = 2
	}
	labels := make(map[float64]string, n)
	for _, v := range floats.Span(make([]float64, n), cfg.Min, cfg.Max) {
		v = cfg.Clamp(cfg.Min + cfg.Step*round((v-cfg.Min)/cfg.Step))
		labels[v] = cfg.FormatValue(v)
	}
	return labels
}
