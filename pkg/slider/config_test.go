package slider

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{name: "min equals max", cfg: Config{Min: 5, Max: 5, Step: 1}, field: "range"},
		{name: "inverted range", cfg: Config{Min: 10, Max: 0, Step: 1}, field: "range"},
		{name: "zero step", cfg: Config{Min: 0, Max: 10, Step: 0}, field: "step"},
		{name: "negative step", cfg: Config{Min: 0, Max: 10, Step: -1}, field: "step"},
		{name: "nan min", cfg: Config{Min: math.NaN(), Max: 10, Step: 1}, field: "min"},
		{name: "infinite max", cfg: Config{Min: 0, Max: math.Inf(1), Step: 1}, field: "max"},
		{name: "unknown orientation", cfg: Config{Min: 0, Max: 10, Step: 1, Orientation: 7}, field: "orientation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, s)

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100.0, cfg.Max)
	assert.True(t, cfg.Tooltip)
}

func TestSetConfigKeepsPreviousOnError(t *testing.T) {
	s, err := New(DefaultConfig())
	require.NoError(t, err)

	bad := DefaultConfig()
	bad.Step = 0
	assert.Error(t, s.SetConfig(bad))
	assert.Equal(t, 1.0, s.Config().Step)
}

func TestFormatValue(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "12.5", cfg.FormatValue(12.5))
	assert.Equal(t, "40", cfg.FormatValue(40))

	cfg.Format = func(v float64) string { return "v" + DefaultConfig().FormatValue(v) }
	assert.Equal(t, "v3", cfg.FormatValue(3))
}

func TestParseOrientation(t *testing.T) {
	o, err := ParseOrientation("Vertical")
	require.NoError(t, err)
	assert.Equal(t, Vertical, o)

	o, err = ParseOrientation("")
	require.NoError(t, err)
	assert.Equal(t, Horizontal, o)

	_, err = ParseOrientation("diagonal")
	assert.Error(t, err)
}
