package slider

import (
	"fmt"
	"math"
	"strconv"
)

// Config is the per-render configuration of a slider. The value itself is
// not part of it: the caller owns the value and mirrors it with SetValue.
type Config struct {
	Min         float64
	Max         float64
	Step        float64
	Orientation Orientation
	Reverse     bool
	Labels      map[float64]string
	HandleLabel string
	Tooltip     bool
	Format      func(float64) string
}

// DefaultConfig returns a 0..100 horizontal slider stepping by 1 with the
// tooltip enabled.
func DefaultConfig() Config {
	return Config{
		Min:         0,
		Max:         100,
		Step:        1,
		Orientation: Horizontal,
		Tooltip:     true,
	}
}

// ConfigurationError reports a configuration that would produce
// meaningless geometry.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("slider: invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the bounds and step.
func (c Config) Validate() error {
	bounds := []struct {
		name string
		v    float64
	}{{"min", c.Min}, {"max", c.Max}, {"step", c.Step}}
	for _, b := range bounds {
		if math.IsNaN(b.v) || math.IsInf(b.v, 0) {
			return &ConfigurationError{Field: b.name, Reason: "must be a finite number"}
		}
	}
	if c.Min >= c.Max {
		return &ConfigurationError{
			Field:  "range",
			Reason: fmt.Sprintf("min (%g) must be less than max (%g)", c.Min, c.Max),
		}
	}
	if c.Step <= 0 {
		return &ConfigurationError{Field: "step", Reason: fmt.Sprintf("must be positive, got %g", c.Step)}
	}
	if c.Orientation != Horizontal && c.Orientation != Vertical {
		return &ConfigurationError{Field: "orientation", Reason: fmt.Sprintf("unknown orientation %d", c.Orientation)}
	}
	return nil
}

// FormatValue renders v for the tooltip and labels.
func (c Config) FormatValue(v float64) string {
	if c.Format != nil {
		return c.Format(v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Clamp limits v to [Min, Max].
func (c Config) Clamp(v float64) float64 {
	return clamp(v, c.Min, c.Max)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
